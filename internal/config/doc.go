// Package config holds seqterm's typed configuration and loads it from its
// layered sources.
//
// Sources apply in order, each overriding the previous one:
//
//  1. Built-in defaults (Default)
//  2. config.toml, config.yaml or config.yml in the config directory
//  3. SEQTERM_* environment variables
//  4. init.lua in the config directory
//  5. Overrides, normally command line flags
//
// Every source goes through Set with a dotted path such as "ui.grid.rows",
// so a setting has the same name in TOML, YAML, environment and Lua.
// Keymap entries use the path "keymap.<key spec>".
package config
