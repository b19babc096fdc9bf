package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"gesturecraft/api"
	"gesturecraft/config"
	"gesturecraft/session"
	"gesturecraft/speech"
)

var (
	configPath string
	servePort  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = os.Getenv("GESTURECRAFT_CONFIG")
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}

		logger := slog.Default()
		manager := session.NewManager(session.Options{
			Presets:       cfg.Presets,
			SaveDelay:     cfg.SaveDelay,
			LoginDelay:    cfg.LoginDelay,
			NoticeHistory: cfg.NoticeHistory,
		})
		router := api.RegisterRoutes(manager, newSpeaker(cfg.Speech, logger), logger)

		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("gesturecraft listening", "addr", addr)
		if err := http.ListenAndServe(addr, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func newSpeaker(cfg config.Speech, logger *slog.Logger) speech.Speaker {
	if !cfg.Enabled {
		logger.Info("speech output disabled")
		return speech.Unavailable{}
	}
	sp := speech.NewCommandSpeaker(cfg.Command, cfg.Args, logger)
	if !sp.Available() {
		logger.Warn("speech command not found; phrases cannot be played", "command", cfg.Command)
	}
	return sp
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (default $GESTURECRAFT_CONFIG)")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides config and $PORT)")
}
