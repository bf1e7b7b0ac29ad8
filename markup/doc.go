// Package markup reads and writes elements as XML project files.
//
// Markup is the legacy persisted form of a project.  It carries text
// only: values read back as Text and the array flag of an element is
// lost, so exact round trips hold for trees produced by Parse.
//
//	root, err := markup.Parse(d)
//	if err != nil {
//	    return err
//	}
//	err = markup.Encode(root, w)
//
// The root tag is "project".  Files with a "Project", "Game" or
// "projectPartial" root are accepted on read; AnyRoot lifts the check.
package markup
