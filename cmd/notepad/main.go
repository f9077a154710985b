package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/pyojuwon-sketc/notepad"
	"github.com/pyojuwon-sketc/notepad/internal/app"
	"github.com/pyojuwon-sketc/notepad/internal/clipboard"
	"github.com/pyojuwon-sketc/notepad/internal/config"
	"github.com/pyojuwon-sketc/notepad/internal/dialog"
)

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString("notepad: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	logFile := flag.String("log", "", "write debug log to `file`")
	dialogs := flag.String("dialogs", "", "dialog backend: auto, native or terminal")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: notepad [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("notepad", notepad.VersionTag())
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *dialogs != "" {
		cfg.Dialogs = *dialogs
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "notepad")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}
	logger.Printf("notepad %s starting, config %s", notepad.Version(), cfgPath)

	cb := clipboard.New()
	if !cb.Native() {
		logger.Printf("no system clipboard, using in-memory clipboard")
	}

	backend := dialog.New(cfg.Dialogs, notepad.DefaultAppName)
	logger.Printf("dialogs: %s", dialog.Resolve(cfg.Dialogs))

	m := app.New(app.Options{
		Config:    cfg,
		Dialogs:   backend,
		Clipboard: cb,
		Logger:    logger,
		Path:      flag.Arg(0),
	})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	switch b := backend.(type) {
	case *dialog.Terminal:
		b.Attach(p)
		b.Logger = logger
	case *dialog.Native:
		b.Logger = logger
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = config.Watch(ctx, cfgPath,
		func(c config.Config) { p.Send(app.ConfigMsg{Config: c}) },
		func(err error) { p.Send(app.ConfigErrorMsg{Err: err}) },
	)
	if err != nil {
		// Hot reload is optional.
		logger.Printf("config watch: %v", err)
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Printf("notepad exiting")
	return nil
}
