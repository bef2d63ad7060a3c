package commands

import (
	"github.com/spf13/cobra"

	"github.com/njchilds90/symcalc/internal/config"
	"github.com/njchilds90/symcalc/internal/logging"
	"github.com/njchilds90/symcalc/internal/server"
)

var (
	servePort    string
	serveEnvFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the symcalc tool server",
	Long: `Serve the symcalc tools over HTTP.

  POST /tool    run a tool call
  GET  /schema  tool schema
  GET  /health  liveness

Settings come from --env, SYMCALC_CONFIG_FILE and SYMCALC_* variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(serveEnvFile)
		if err != nil {
			return err
		}
		if servePort != "" {
			conf.Port = servePort
		}
		if cmd.Flags().Changed("no-simplify") {
			conf.AutoSimplify = !noSimplify
		}
		logging.Init(conf.Logging)
		return server.New(conf).Run()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveEnvFile, "env", ".env", "Optional .env file to load")
	AddCommand(serveCmd)
}
