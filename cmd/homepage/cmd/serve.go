package cmd

import (
	"github.com/nfrund/homepage/internal/app"
	"github.com/nfrund/homepage/internal/config"
	"github.com/nfrund/homepage/internal/logging"
	"github.com/nfrund/homepage/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Loads configuration from the environment (and an optional .env file),
then serves the home page until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.New(cfg.LogFormat, cfg.LogLevel)

		ctx, stop := server.SignalContext(cmd.Context())
		defer stop()

		return app.Serve(ctx, app.NewContainer(cfg, afero.NewOsFs()))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
