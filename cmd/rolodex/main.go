package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/contact"
	"github.com/smileynet/rolodex/internal/logging"
	"github.com/smileynet/rolodex/internal/render"
	"github.com/smileynet/rolodex/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Project config file." default:".rolodex.yaml" type:"path"`

	UI     UICmd     `cmd:"" default:"1" help:"Open the interactive contact manager (default)."`
	List   ListCmd   `cmd:"" help:"Print every contact."`
	Search SearchCmd `cmd:"" help:"Print contacts matching a query."`
}

// errNoMatch is returned by search when nothing matches the query.
var errNoMatch = errors.New("no contacts matched")

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig(projectPath string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		projectPath,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newStore builds the contact store from the configured seed contacts.
func newStore(cfg *config.Config) (*contact.Store, error) {
	return contact.NewStore(cfg.SeedContacts()...)
}

// --- UI command ---

// UICmd opens the interactive TUI.
type UICmd struct {
	Sort string `help:"Initial sort key (name, phone, email). Defaults to config."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the TUI.
func (c *UICmd) Run(cli *CLI) error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !isTTY {
		return fmt.Errorf("ui: requires a terminal (TTY); try: rolodex list")
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	logger, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	m, err := c.model(cfg, logger)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	logger.Info("session start", zap.Int("contacts", len(m.Rows())), zap.Stringer("sort", m.SortKey()))
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return c.run(isTTY, prog)
}

// model builds the TUI model from config, applying the --sort override.
func (c *UICmd) model(cfg *config.Config, logger *zap.Logger) (ui.Model, error) {
	key := cfg.SortKey()
	if c.Sort != "" {
		k, err := contact.ParseSortKey(c.Sort)
		if err != nil {
			return ui.Model{}, err
		}
		key = k
	}

	store, err := newStore(cfg)
	if err != nil {
		return ui.Model{}, err
	}

	return ui.NewModel(
		ui.WithStore(store),
		ui.WithSortKey(key),
		ui.WithLogger(logger),
	), nil
}

// run executes the tea program, enabling testable wiring.
func (c *UICmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("ui: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// --- List and search commands ---

// OutputFlags are shared by the printing commands.
type OutputFlags struct {
	Sort    string `help:"Sort key (name, phone, email). Defaults to config."`
	Format  string `help:"Output format." enum:"text,json,yaml" default:"text"`
	NoColor bool   `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// sortKey resolves the sort flag against the configured default.
func (o OutputFlags) sortKey(cfg *config.Config) (contact.SortKey, error) {
	if o.Sort == "" {
		return cfg.SortKey(), nil
	}
	return contact.ParseSortKey(o.Sort)
}

func (o OutputFlags) printer(w io.Writer) (render.Printer, error) {
	return render.NewPrinter(render.Options{
		Writer:     w,
		Format:     render.Format(o.Format),
		ForcePlain: o.NoColor,
	})
}

// ListCmd prints every contact.
type ListCmd struct {
	OutputFlags `embed:""`
}

// Run executes the list command.
func (l *ListCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return l.run(os.Stdout, cfg)
}

// run prints the sorted store, enabling testable wiring.
func (l *ListCmd) run(w io.Writer, cfg *config.Config) error {
	key, err := l.sortKey(cfg)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	store, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	p, err := l.printer(w)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return p.Print(store.Sorted(key))
}

// SearchCmd prints contacts matching a query.
type SearchCmd struct {
	Query string `arg:"" help:"Case-insensitive text matched against name, phone and email."`

	OutputFlags `embed:""`
}

// Run executes the search command.
func (s *SearchCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return s.run(os.Stdout, cfg)
}

// run prints the matching contacts, enabling testable wiring.
func (s *SearchCmd) run(w io.Writer, cfg *config.Config) error {
	key, err := s.sortKey(cfg)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	store, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	p, err := s.printer(w)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	found := contact.SortContacts(store.Search(s.Query), key)
	if err := p.Print(found); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(found) == 0 {
		return fmt.Errorf("search: %w for %q", errNoMatch, s.Query)
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitNoMatch = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errNoMatch) {
		return exitNoMatch
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rolodex"),
		kong.Description("A terminal contact manager."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
