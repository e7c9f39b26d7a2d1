package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/config"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/db"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/editor"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/generate"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/server"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/storage"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the report editor server",
	Long:  `Starts the HTTP server hosting the editing API, the live preview websocket and the generation proxy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "rapport.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := storage.NewStore(database, cfg.RevisionLimit)

		// The saved snapshot wins over defaults; a fresh install starts
		// from the seeded skeleton.
		doc, err := store.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading saved report: %w", err)
		}
		if doc == nil {
			doc = report.DefaultDocument()
		}

		hub := editor.NewHub()
		session := editor.NewSession(doc, store, hub, editor.Options{
			MaxChapterLevel: cfg.MaxChapterLevel,
			SaveDelay:       time.Duration(cfg.SaveDebounceMS) * time.Millisecond,
			PreviewDelay:    time.Duration(cfg.PreviewDebounceMS) * time.Millisecond,
		})

		generator := generate.NewClient(cfg.GeneratorURL, time.Duration(cfg.GeneratorTimeoutSec)*time.Second)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			DataDir:  cfg.DataDir,
			AllowAll: cfg.AllowAllOrigins,
		}, database, store, session, hub, generator)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "rapport v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Generator: %s\n", cfg.GeneratorURL)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
