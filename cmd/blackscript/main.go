package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	blackscript "github.com/OnlyF0uR/blackscript"
	"github.com/OnlyF0uR/blackscript/internal/settings"
	"github.com/OnlyF0uR/blackscript/tui"
)

type options struct {
	configPath string
	text       string
	logPath    string
	version    bool
}

func parseFlags(args []string) (options, error) {
	var opt options
	fs := flag.NewFlagSet("blackscript", flag.ContinueOnError)
	fs.StringVar(&opt.configPath, "config", "", "path to a TOML settings file")
	fs.StringVar(&opt.text, "text", "", "initial document text")
	fs.StringVar(&opt.logPath, "log", "", "write debug logs to this file")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opt, nil
}

type model struct {
	editor tui.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && (msg.String() == "ctrl+c" || msg.String() == "ctrl+q") {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func newModel(opt options, logger *slog.Logger) (model, error) {
	var file settings.File
	if opt.configPath != "" {
		var err error
		file, err = settings.Load(opt.configPath)
		if err != nil {
			return model{}, err
		}
	}

	r := lipgloss.NewRenderer(os.Stdout)
	if p, ok := file.Profile(); ok {
		r.SetColorProfile(p)
	}

	cfg := file.TUIConfig(r)
	cfg.Editor.Text = opt.text
	cfg.Editor.Logger = logger
	return model{editor: tui.New(cfg)}, nil
}

func newLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}

func run(args []string) error {
	opt, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opt.version {
		fmt.Println(blackscript.VersionTag())
		return nil
	}

	logger, closer, err := newLogger(opt.logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := newModel(opt, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "version", blackscript.Version())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
