package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/avrillon/roomscout/internal/config"
	"github.com/avrillon/roomscout/internal/geo"
	"github.com/avrillon/roomscout/internal/logging"
	"github.com/avrillon/roomscout/internal/session"
	"github.com/avrillon/roomscout/internal/tui"
	"github.com/avrillon/roomscout/pkg/api"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	godotenv.Load() //nolint:errcheck // a missing .env is fine

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("roomscout " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "logout":
			return runLogout()
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	credsDir, err := session.DefaultDir()
	if err != nil {
		return fmt.Errorf("resolve credentials dir: %w", err)
	}

	// The TUI owns stdout, so logs go to a file.
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(credsDir, "roomscout.log")
	}
	logger, err := logging.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	sess := session.NewController(session.NewFileStore(credsDir), logger)
	sess.Bootstrap()

	c := api.New(cfg.APIBaseURL, logger)
	locator := geo.FromConfig(cfg.Latitude, cfg.Longitude)

	logger.Info("starting", zap.String("version", version), zap.Bool("authenticated", sess.Authenticated()))

	app := tui.NewApp(c, sess, locator, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogout() error {
	credsDir, err := session.DefaultDir()
	if err != nil {
		return err
	}
	if err := session.NewFileStore(credsDir).Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}

func printHelp() {
	fmt.Print(`roomscout — browse rooms from your terminal

Usage:
  roomscout            launch the app
  roomscout logout     forget the stored session
  roomscout version    print the version

Environment:
  ROOMSCOUT_API_URL    override the API base URL
  ROOMSCOUT_LATITUDE   device latitude (with ROOMSCOUT_LONGITUDE)
  ROOMSCOUT_LONGITUDE  device longitude
  ROOMSCOUT_LOG_FILE   debug log destination (default ~/.roomscout/roomscout.log)
`)
}
