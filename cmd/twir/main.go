package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/twir"
	"github.com/fwojciec/twir/goquery"
	"github.com/fwojciec/twir/publish"
	twirslog "github.com/fwojciec/twir/slog"
	"github.com/fwojciec/twir/sqlite"
	"github.com/fwojciec/twir/telegram"
	"github.com/fwojciec/twir/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", ErrorText(err))
		os.Exit(1)
	}
}

// ErrorText returns the user-facing text for an error returned by Run.
// Application errors show their message; anything else is shown in full.
func ErrorText(err error) string {
	if twir.ErrorCode(err) == twir.EINTERNAL {
		return err.Error()
	}
	return twir.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the issue store.
	DB *sqlite.DB

	// Overrides for end-to-end testing. Real implementations are used
	// when nil.
	Fetcher twir.Fetcher
	Poster  twir.Poster
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("twir"),
		kong.Description("Render This Week in Rust issues as Telegram messages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'twir --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	layout := twir.DefaultLayout()
	if cli.Layout != "" {
		layout, err = yaml.LoadLayout(cli.Layout)
		if err != nil {
			return err
		}
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = newSourceFetcher()
	}
	defer fetcher.Close()

	deps.Publisher = &publish.Publisher{
		Fetcher: twirslog.NewLoggingFetcher(fetcher, logger),
		Parser:  twirslog.NewLoggingParser(goquery.NewArticleParser(layout), logger),
	}

	if cmd == "post" || cmd == "history" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TWIR_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Issues = twirslog.NewLoggingIssueStore(sqlite.NewIssueStore(m.DB), logger)
		deps.Publisher.Issues = deps.Issues
	}

	if cmd == "post" {
		poster := m.Poster
		if poster == nil {
			poster = telegram.NewPoster(cli.Post.Token, cli.Post.ChatID)
		}
		deps.Publisher.Poster = twirslog.NewLoggingPoster(poster, logger)
	}

	if cmd == "preview" {
		deps.Publisher.Concurrency = cli.Preview.Concurrency
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("TWIR_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "twir.db"
	}
	dir := filepath.Join(home, ".twir")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "twir.db")
}
