package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookhaven/internal/config"
	"bookhaven/internal/hardcover"
	"bookhaven/internal/log"
	"bookhaven/internal/server"
	"bookhaven/internal/store"
	"bookhaven/internal/store/db"
	"bookhaven/internal/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const greetingBanner = `
██████   ██████   ██████  ██   ██ ██   ██  █████  ██    ██ ███████ ███    ██
██   ██ ██    ██ ██    ██ ██  ██  ██   ██ ██   ██ ██    ██ ██      ████   ██
██████  ██    ██ ██    ██ █████   ███████ ███████ ██    ██ █████   ██ ██  ██
██   ██ ██    ██ ██    ██ ██  ██  ██   ██ ██   ██  ██  ██  ██      ██  ██ ██
██████   ██████   ██████  ██   ██ ██   ██ ██   ██   ████   ███████ ██   ████
`

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:     "bookhaven",
		Short:   "BookHaven is a personal book library manager",
		Version: version.GetCurrentVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if _, err := config.GetConfig(); err != nil {
				return err
			}
			if configFile != "" {
				if _, err := config.ParseFile(configFile); err != nil {
					return err
				}
			}

			log.Logger = log.NewLogger()
			defer log.Logger.Sync()

			fmt.Print(greetingBanner)
			log.Info("Starting BookHaven", zap.String("version", version.GetCurrentVersion()))

			database, err := db.NewDB(config.Opts.DSN)
			if err != nil {
				log.Error("Error connecting to database", zap.Error(err))
				return err
			}
			defer database.Close()
			if err := database.Migrate(ctx); err != nil {
				log.Error("Error migrating database", zap.Error(err))
				return err
			}

			s := store.NewStore(database.DB)
			if err := s.Ping(); err != nil {
				log.Error("Error pinging database", zap.Error(err))
				return err
			}

			if config.Opts.HardcoverToken == "" {
				log.Warn("No Hardcover token configured, remote search is disabled")
			}
			metadata := hardcover.NewClient(config.Opts.HardcoverToken)

			httpServer, err := server.StartServer(ctx, s, metadata)
			if err != nil {
				log.Error("Error starting server", zap.Error(err))
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			log.Info("Shutting down")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down server", zap.Error(err))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
