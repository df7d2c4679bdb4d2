package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/config"
	"github.com/fwojciec/resumedb/docx"
	"github.com/fwojciec/resumedb/fs"
	"github.com/fwojciec/resumedb/gemini"
	"github.com/fwojciec/resumedb/pdf"
	"github.com/fwojciec/resumedb/scan"
	rslog "github.com/fwojciec/resumedb/slog"
	"github.com/fwojciec/resumedb/soffice"
	"github.com/fwojciec/resumedb/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !Reported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportedError marks an error a command has already written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// Reported reports whether err was already shown to the user.
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor the config file set one.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ResumeService resumedb.ResumeService
	ScanService   resumedb.ScanService
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
		kong.Name("resumedb"),
		kong.Description("Scan a directory tree for resumes and store their text in SQLite."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no directory specified. Run 'resumedb --help' to see available commands")
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

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// merge only touches files.
	if cmd == "merge" {
		return kongCtx.Run(deps)
	}

	dbPath := cmp.Or(cli.DB, expandHome(cfg.DB), m.DBPath)
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RESUMEDB_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.ResumeService = rslog.NewLoggingResumeService(sqlite.NewResumeService(m.DB), logger)
	m.ScanService = sqlite.NewScanService(m.DB)
	deps.Resumes = m.ResumeService
	deps.Scans = m.ScanService

	switch cmd {
	case "scan":
		conv := soffice.NewConverter(
			soffice.WithBinary(cmp.Or(cli.Scan.Soffice, expandHome(cfg.Soffice))),
			soffice.WithTimeout(cmp.Or(cli.Scan.ConvertTimeout, cfg.ConvertTimeout)),
		)
		dispatcher := &scan.Dispatcher{
			DOCX: docx.NewExtractor(),
			DOC:  resumedb.ExtractorFunc(conv.ConvertDoc),
			PDF:  pdf.NewExtractor(),
		}

		ignore := cfg.Ignore
		ignore.Paths = append(ignore.Paths, cli.Scan.IgnorePath...)
		ignore.Names = append(ignore.Names, cli.Scan.IgnoreName...)

		deps.Scanner = &scan.Scanner{
			Walker:     fs.NewWalker(),
			Dispatcher: rslog.NewLoggingExtractor(dispatcher, logger),
			Resumes:    deps.Resumes,
			Scans:      deps.Scans,
			Ignore:     &ignore,
		}

	case "export":
		exports, err := fs.NewExportStore(cli.Export.Dir, cli.Export.Name)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", resumedb.ErrorMessage(err))
			return reported(err)
		}
		deps.Exports = exports

	case "ask":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return reported(fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey"))
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		asker := gemini.NewAsker(client, m.ResumeService)
		if tc, err := gemini.NewTokenCounter(gemini.Model); err != nil {
			logger.Warn("token counting disabled", "err", err)
		} else {
			asker.Tokens = tc
		}
		deps.Asker = asker
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "master_resumes.db"
	}
	dir := filepath.Join(home, ".resumedb")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "master_resumes.db")
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

