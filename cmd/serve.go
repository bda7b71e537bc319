package cmd

import (
	"github.com/bgraf/routetracker/cmd/serve"
	"github.com/bgraf/routetracker/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the route map and accept track uploads over HTTP",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Listen address")
	if err := viper.BindPFlag(config.KeyServerAddress, serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
}
