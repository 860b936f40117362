package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/chatpick/pkg/domain"
	"github.com/umputun/chatpick/pkg/menu"
	"github.com/umputun/chatpick/pkg/repository"
	"github.com/umputun/chatpick/pkg/settings"
)

// Opts with all CLI options
type Opts struct {
	Settings string `short:"s" long:"settings" env:"SETTINGS_FILE" description:"settings file, json or yaml (default: settings.json next to executable)"`
	Lang     string `long:"lang" env:"LANG_UI" default:"ru" choice:"ru" choice:"en" description:"menu language"`
	JSON     bool   `long:"json" description:"print completed settings as json to stdout"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting chatpick version %s", revision)

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Printf("[ERROR] %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log.Print("[INFO] settings ready")
}

// run loads settings, runs the menu until settings are complete and hands the result over
func run(opts Opts, in io.Reader, out io.Writer) error {
	path, err := settingsPath(opts.Settings)
	if err != nil {
		return err
	}

	msgs, err := menu.MessagesFor(opts.Lang)
	if err != nil {
		return err
	}

	repo, err := repository.NewFileRepository(path)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	store, err := settings.New(repo)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	log.Printf("[DEBUG] settings file %s", repo.Path())

	m := menu.New(store, menu.Params{In: in, Out: out, Messages: msgs, NoColor: opts.NoColor})
	if err := m.Run(); err != nil {
		if errors.Is(err, menu.ErrInputClosed) {
			return errors.New("input closed before all settings provided")
		}
		return fmt.Errorf("menu failed: %w", err)
	}

	res := store.Settings()
	log.Printf("[INFO] chat %q, prefix %q, keywords %v, range %s - %s", res.ChatName, res.Prefix,
		res.Keywords, domain.FormatDate(res.DateFrom), domain.FormatDate(res.DateTo))

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(repository.NewRecord(res)); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
	}
	return nil
}

// settingsPath returns explicit path or settings.json in the executable's directory
func settingsPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "settings.json"), nil
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError, lgr.Out(os.Stderr), lgr.Err(os.Stderr)}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
