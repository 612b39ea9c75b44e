package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emrgen/wiki/internal/config"
	"github.com/emrgen/wiki/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the wiki http server",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = config.LoadConfig().HTTPPort
		}

		server.NewServer(port).Start()
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "http port")
}
