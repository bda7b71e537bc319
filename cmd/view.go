package cmd

import (
	"fmt"

	"github.com/bgraf/routetracker/render"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the map center and zoom level that fit all routes",
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	s, coll, err := loadCollection()
	if err != nil {
		return err
	}
	defer closeStore(s)

	view := render.ComputeView(coll, render.DefaultView())
	fmt.Printf("Center: %.5f, %.5f\n", view.Center.Lat, view.Center.Lon)
	fmt.Printf("Zoom: %d\n", view.Zoom)

	return nil
}
