// Package config loads and validates YAML report configuration.
//
// A config is optional. Values are layered: built-in defaults, then the
// file, then HTMLIFY_* environment variables and command-line flags (merged
// by the CLI).
//
//	report:
//	  title: Nightly debug outputs
//	  timestampFormat: iso
//	images:
//	  normalizeMIME: true
//	models:
//	  width: 640px
//	  height: 480px
//	code:
//	  style: monokai
//	render:
//	  workers: 4
package config
