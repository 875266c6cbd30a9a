// Package mygame holds accessors for the MyGame.Example schema in
// monster_test.fbs. The code is maintained by hand in the layout flatc uses
// for generated Go code; keep it in sync with the schema when either changes.
// The runtime tests drive the builder and the table views through it.
package mygame
