package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/app"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/db"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:   "aerosense",
	Short: "AeroSense asthma and allergy education API",
	Long: `AeroSense serves the symptom checker, trigger dashboard, risk forecast and
inhaler technique coach behind the web front-end.

Educational purposes only. Not a substitute for professional medical advice.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the entity tables and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext(cmd.Context())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		a.Log.Error("Server stopped with error", "error", err)
		return err
	}
	a.Log.Info("Server stopped")
	return nil
}

func runMigrate(_ *cobra.Command, _ []string) error {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	cfg, err := app.LoadConfig(log)
	if err != nil {
		return err
	}
	gdb, err := db.Open(log, cfg.DBConfig())
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	defer db.Close(gdb)

	if err := db.AutoMigrateAll(gdb); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	log.Info("Migrations applied", "driver", cfg.DBDriver)
	return nil
}
