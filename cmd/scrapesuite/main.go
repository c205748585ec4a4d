package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"github.com/russellbomer/scrapesuite-sub001/goquery"
	suiteslog "github.com/russellbomer/scrapesuite-sub001/slog"
	"github.com/russellbomer/scrapesuite-sub001/sqlite"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	JobService scrapesuite.JobService
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
		kong.Name("scrapesuite"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scrapesuite --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SCRAPESUITE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.JobService = sqlite.NewJobService(m.DB)
	deps.DB = m.DB
	deps.Jobs = m.JobService

	// Wire the detection engine, optionally behind logging decorators.
	detector := goquery.NewDetector()
	deps.Detector = detector
	deps.Analyzer = goquery.NewAnalyzerWithDetector(detector)
	deps.Fields = goquery.NewFieldDetectorWithDetector(detector)
	deps.Extractor = goquery.NewExtractor()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Detector = suiteslog.NewLoggingDetector(deps.Detector, logger)
		deps.Analyzer = suiteslog.NewLoggingAnalyzer(deps.Analyzer, logger)
		deps.Fields = suiteslog.NewLoggingFieldDetector(deps.Fields, logger)
		deps.Extractor = suiteslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SCRAPESUITE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "scrapesuite.db"
	}
	dir := filepath.Join(home, ".scrapesuite")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "scrapesuite.db")
}
