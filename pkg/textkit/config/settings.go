package config

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/textkit/pkg/textkit/strlist"
	"github.com/randalmurphal/textkit/pkg/textkit/template"
)

// Settings keys.
const (
	KeyBlockSize = "block_size"
	KeyCapacity  = "capacity"
	KeyMissing   = "missing"
	KeyPath      = "path"
	KeyStore     = "store"
	KeyLogLevel  = "log_level"
)

// PathSeparator separates directories in a string-valued search path.
const PathSeparator = ":"

// Settings are the rendering options read from a settings file.
type Settings struct {
	BlockSize  int
	Capacity   int
	Missing    template.MissingAction
	SearchPath *strlist.List
	StorePath  string
	LogLevel   string
}

// DefaultSettings returns settings with every field at its default.
func DefaultSettings() Settings {
	return Settings{
		Missing:    template.MissingEmpty,
		SearchPath: strlist.New("."),
		LogLevel:   "info",
	}
}

// DecodeSettings reads Settings from cfg, starting from DefaultSettings.
//
// The search path may be a colon-separated string or a list of strings.
// Empty path entries are skipped.
func DecodeSettings(cfg Config) (Settings, error) {
	s := DefaultSettings()

	s.BlockSize = cfg.Int(KeyBlockSize, s.BlockSize)
	s.Capacity = cfg.Int(KeyCapacity, s.Capacity)
	if s.BlockSize < 0 {
		return s, fmt.Errorf("%s: must not be negative, got %d", KeyBlockSize, s.BlockSize)
	}
	if s.Capacity < 0 {
		return s, fmt.Errorf("%s: must not be negative, got %d", KeyCapacity, s.Capacity)
	}

	if raw, ok := cfg.Raw()[KeyMissing]; ok {
		mode, _ := raw.(string)
		action, ok := template.ParseMissingAction(mode)
		if !ok || mode == "" {
			return s, fmt.Errorf("%s: unknown mode %v", KeyMissing, raw)
		}
		s.Missing = action
	}

	if cfg.Has(KeyPath) {
		path, err := searchPath(cfg)
		if err != nil {
			return s, err
		}
		s.SearchPath = path
	}

	s.StorePath = cfg.String(KeyStore, s.StorePath)
	s.LogLevel = strings.ToLower(cfg.String(KeyLogLevel, s.LogLevel))
	return s, nil
}

func searchPath(cfg Config) (*strlist.List, error) {
	if dirs, ok := cfg.Raw()[KeyPath].(string); ok {
		return ParseSearchPath(dirs), nil
	}
	dirs := cfg.StringSlice(KeyPath, nil)
	if dirs == nil {
		return nil, fmt.Errorf("%s: expected string or list of strings", KeyPath)
	}
	path := strlist.New()
	for _, d := range dirs {
		if d != "" {
			_ = path.Add(d)
		}
	}
	return path, nil
}

// ParseSearchPath splits a colon-separated directory list, skipping
// empty entries.
func ParseSearchPath(dirs string) *strlist.List {
	return strlist.Split(dirs, -1, PathSeparator, strlist.SplitGreedy)
}
