// Package keymap maps key sequences to editor actions, one table per mode.
//
// Tables are built from plain string maps (mode name → sequence → action
// name), the form configuration files use. Action names are resolved into
// the closed Action enum once, when the table is built; names that do not
// resolve are dropped with a warning so a typo in a user keymap never
// reaches the interpreter.
//
// # Sequences
//
// A sequence is the canonical token of each key, joined as the resolver
// joins them: a single letter followed by a single character concatenates
// ("gg", "iw", "g~"), as do "]]" and "[[". Everything else is joined with a
// space ("Ctrl+w h").
//
// # Special keys
//
// The sequence "Char" in an insert-like table is the fallback for any
// printable character that has no binding of its own.
//
// # Usage
//
//	km, err := keymap.Build(keymap.DefaultTables(), logger)
//	if err != nil {
//	    return err
//	}
//	b, ok := km.Table(mode.Normal).Lookup("gg")
//	if ok {
//	    // dispatch b.Action
//	}
package keymap
