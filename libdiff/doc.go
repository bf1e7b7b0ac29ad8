// Package libdiff compares element trees.
//
// Diff reports structural changes between two trees, aligning children
// the way a text diff aligns lines.  The patch helpers express the
// difference of the canonical JSON forms as JSON merge patches
// (RFC 7386) and apply JSON patches (RFC 6902).
package libdiff
