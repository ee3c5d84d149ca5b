package commands

import (
	"fmt"

	"github.com/ncobase/studyverse/config"
	"github.com/ncobase/studyverse/internal/server"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the command that runs the HTTP API.
func NewServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			app, cleanup, err := server.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer cleanup()

			return app.Run(cmd.Context())
		},
	}
}
