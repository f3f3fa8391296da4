package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/sant0-9/diary/internal/config"
	"github.com/sant0-9/diary/internal/logging"
	"github.com/sant0-9/diary/internal/skill"
	"github.com/sant0-9/diary/internal/tui"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	classify := flag.String("classify", "", "print the skills suggested for a topic and exit")
	rulesPath := flag.String("rules", "", "skill rule table to use instead of the configured one")
	flag.Parse()

	if *showVersion {
		fmt.Println("diary", version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	path := *rulesPath
	if path == "" && cfg != nil {
		path = cfg.RulesPath
	}
	rules, err := skill.Load(path)
	if err != nil {
		fatal(err)
	}

	if *classify != "" {
		fmt.Println(strings.Join(skill.NewClassifier(rules).Classify(*classify), "\n"))
		return
	}

	logger, closer := openLog(cfg)
	if closer != nil {
		defer closer.Close()
	}
	logger.Info().Str("version", version).Int("rules_version", rules.Version()).Msg("starting")

	app := tui.NewApp(tui.Options{
		Config: cfg,
		Rules:  rules,
		Logger: logger,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fatal(err)
	}
}

func openLog(cfg *config.Config) (zerolog.Logger, io.Closer) {
	dir, err := config.ConfigDir()
	if err != nil {
		return zerolog.Nop(), nil
	}
	level := config.DefaultLogLevel
	if cfg != nil {
		level = cfg.LogLevel
	}
	logger, closer, err := logging.Open(dir, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return zerolog.Nop(), nil
	}
	return logger, closer
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
