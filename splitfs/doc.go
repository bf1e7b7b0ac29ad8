// Package splitfs stores split projects on disk.
//
// Each unit of a split project is written next to the main file, at
//
//	<dir><pattern path>-<sanitized name><suffix>
//
// so that the layout "Level 1" under "/layouts/layout" of
// /games/demo/game.json lives in /games/demo/layouts/layout-Level_321.json.
package splitfs
