// textkit renders a template against a set of facts.
//
// Facts are merged from, in increasing priority: a stored fact set
// (--store/--load), a YAML or JSON fact file (--facts, nested maps become
// dotted keys) and --set key=value flags. The template is read from the
// named file, looked up on the search path, or from stdin when no name is
// given. The rendered text goes to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/randalmurphal/textkit/pkg/textkit"
	"github.com/randalmurphal/textkit/pkg/textkit/config"
	"github.com/randalmurphal/textkit/pkg/textkit/factstore"
	"github.com/randalmurphal/textkit/pkg/textkit/template"
	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// errStoreRequired is returned when --load or --save is used without a store.
var errStoreRequired = errors.New("--load and --save require --store or a store setting")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	factsPath  string
	sets       []string
	storePath  string
	load       string
	save       string
	path       string
	capacity   int
	missing    string
	logLevel   string
	metrics    bool
	tracing    bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("textkit", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "settings file (.yaml, .yml or .json)")
	flagSet.StringVar(&opts.factsPath, "facts", "", "fact file; nested maps flatten to dotted keys")
	flagSet.StringArrayVar(&opts.sets, "set", nil, "extra fact as key=value (repeatable)")
	flagSet.StringVar(&opts.storePath, "store", "", "SQLite fact store (\":memory:\" allowed)")
	flagSet.StringVar(&opts.load, "load", "", "merge the named stored fact set")
	flagSet.StringVar(&opts.save, "save", "", "snapshot the effective facts under this name")
	flagSet.StringVar(&opts.path, "path", "", "colon-separated template search path")
	flagSet.IntVar(&opts.capacity, "capacity", 0, "bound output to N-1 bytes (0 = unbounded)")
	flagSet.StringVar(&opts.missing, "missing", "", "missing reference handling: empty, keep or error")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.BoolVar(&opts.metrics, "metrics", false, "record OpenTelemetry metrics")
	flagSet.BoolVar(&opts.tracing, "trace", false, "record OpenTelemetry spans")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(1))
	}

	settings, err := loadSettings(flagSet, &opts)
	if err != nil {
		return err
	}

	level, err := parseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	runOpts := []textkit.RunOption{
		textkit.WithObservabilityLogger(logger),
		textkit.WithMetrics(opts.metrics),
		textkit.WithTracing(opts.tracing),
	}

	facts, err := gatherFacts(ctx, &opts, settings, runOpts)
	if err != nil {
		return err
	}

	name, tpl, err := readTemplate(flagSet.Arg(0), settings, stdin)
	if err != nil {
		return err
	}

	exp := template.NewExpander(
		template.WithMissingAction(settings.Missing),
		template.WithCapacity(settings.Capacity),
		template.WithBlockSize(settings.BlockSize),
		template.WithLogger(logger),
	)
	res, err := textkit.Render(ctx, name, tpl, facts, append(runOpts, textkit.WithExpander(exp))...)
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, res.Text)
	return err
}

// loadSettings reads the settings file, then applies flags that were set
// explicitly.
func loadSettings(flagSet *pflag.FlagSet, opts *options) (config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		cfg, err := config.FromFile(opts.configPath)
		if err != nil {
			return settings, err
		}
		if settings, err = config.DecodeSettings(cfg); err != nil {
			return settings, fmt.Errorf("settings %s: %w", opts.configPath, err)
		}
	}

	if flagSet.Changed("path") {
		settings.SearchPath = config.ParseSearchPath(opts.path)
	}
	if flagSet.Changed("capacity") {
		if opts.capacity < 0 {
			return settings, fmt.Errorf("--capacity must not be negative, got %d", opts.capacity)
		}
		settings.Capacity = opts.capacity
	}
	if flagSet.Changed("missing") {
		action, ok := template.ParseMissingAction(opts.missing)
		if !ok {
			return settings, fmt.Errorf("--missing: unknown mode %q", opts.missing)
		}
		settings.Missing = action
	}
	if flagSet.Changed("store") {
		settings.StorePath = opts.storePath
	}
	if flagSet.Changed("log-level") {
		settings.LogLevel = strings.ToLower(opts.logLevel)
	}
	return settings, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// gatherFacts merges the stored set, the fact file and --set flags, and
// saves the result when --save is given.
func gatherFacts(ctx context.Context, opts *options, settings config.Settings, runOpts []textkit.RunOption) (*vars.Map, error) {
	facts := vars.New()

	var store factstore.Store
	if opts.load != "" || opts.save != "" {
		if settings.StorePath == "" {
			return nil, errStoreRequired
		}
		s, err := factstore.NewSQLiteStore(settings.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open fact store: %w", err)
		}
		defer s.Close()
		store = s
	}

	if opts.load != "" {
		stored, err := textkit.LoadFacts(ctx, store, opts.load, runOpts...)
		if err != nil {
			return nil, err
		}
		facts.Merge(stored)
	}

	if opts.factsPath != "" {
		cfg, err := config.FromFile(opts.factsPath)
		if err != nil {
			return nil, fmt.Errorf("facts: %w", err)
		}
		facts.Merge(config.Facts(cfg))
	}

	if err := textkit.SetFacts(facts, opts.sets); err != nil {
		return nil, err
	}

	if opts.save != "" {
		if _, err := textkit.SaveFacts(ctx, store, opts.save, facts, runOpts...); err != nil {
			return nil, err
		}
	}
	return facts, nil
}

// readTemplate returns the template name and text. An empty name reads
// stdin. A relative name without a directory part is looked up on the
// search path in order.
func readTemplate(name string, settings config.Settings, stdin io.Reader) (string, string, error) {
	if name == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	path, err := resolve(name, settings)
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read template: %w", err)
	}
	return name, string(data), nil
}

func resolve(name string, settings config.Settings) (string, error) {
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}
	for _, dir := range settings.SearchPath.All() {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("template %s not found on search path %s",
		name, settings.SearchPath.Join(config.PathSeparator))
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `textkit renders $name and ${name} references in a template.

Usage:
  textkit [flags] [template-name]

Without a template name the template is read from stdin.

Flags:
%s`, flagSet.FlagUsages())
}
