// Package config loads interpreter settings and keymaps.
//
// Settings come from three sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. MODALKIT_* environment variables, when WithEnv is given
//
// Keymaps in a file are merged per mode over the default tables rather than
// replacing them. Binding a sequence to "" removes it.
//
// # File Format
//
//	undo_levels = 1000
//	sequence_timeout = "1s"     # or milliseconds: 1000
//	indent_unit = "    "
//	indent_width = 4
//	system_clipboard = false
//	log_level = "info"
//	log_format = "text"
//
//	[keymaps.normal]
//	"Ctrl+s" = "save_file"
//	"ZQ" = ""
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment loading into generic maps
//   - watcher: fsnotify-based reload of a config file
package config
