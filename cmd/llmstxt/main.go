package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmstxt"),
		kong.Description("Crawl documentation sites and assemble llms.txt corpora"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// CI runs keep the index minified to cut diff and artifact size.
	ci := os.Getenv("CI") != ""

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,

		ConfigPath: cli.Config,
		IndexPath:  indexPath(cli.Index, ci),
		CI:         ci,
	}

	return ktx.Run(deps)
}

// indexPath resolves where the crawl index lives when --index is not
// given: CI runs keep it in the working tree as a build artifact, local
// runs keep it in the temp directory so partial crawl state never ends
// up committed.
func indexPath(explicit string, ci bool) string {
	if explicit != "" {
		return explicit
	}
	if ci {
		return "llms-index.json"
	}
	return filepath.Join(os.TempDir(), "llms-index.json")
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to the crawl configuration file" default:"llmstxt.config.json"`
	Index   string `help:"Path to the crawl index file (defaults to llms-index.json in CI, a temp-dir copy otherwise)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Crawl    CrawlCmd    `cmd:"" help:"Crawl one configured site, or all of them"`
	Generate GenerateCmd `cmd:"" help:"Assemble llms.txt corpora from the crawl index"`
}

// Dependencies carries the wiring shared by all commands.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	ConfigPath string
	IndexPath  string
	CI         bool
}
