/*
Package config loads textkit settings and fact files.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
Settings files and fact files are both plain YAML or JSON documents.

# Basic Usage

	cfg, err := config.FromFile("textkit.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	settings, err := config.DecodeSettings(cfg)
	capacity := cfg.Int("capacity", 0)

# Settings

Recognised keys:

	block_size: 1024          # output buffer growth block
	capacity: 0               # bounded output, 0 = unbounded
	missing: keep             # empty | keep | error
	path: /etc/textkit:./tpl  # string or list of directories
	store: facts.db           # SQLite fact store
	log_level: info

# Facts

Facts flattens a document into a *vars.Map, joining nested keys with dots:

	facts := config.Facts(cfg)
	v, _ := facts.Get("multi.level.fact")

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
