package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Amityadav08/SLVNK-Frontend/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Run: func(cmd *cobra.Command, args []string) {
		s := server.New()
		s.RegisterRoutes()

		addr := serveAddr
		if addr == "" {
			addr = s.Cfg.GetListenAddr()
		}
		s.Start(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SLVNK_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
