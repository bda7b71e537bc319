package cmd

import (
	"fmt"

	"github.com/bgraf/routetracker/render"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all uploaded routes",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, coll, err := loadCollection()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if coll.Len() == 0 {
		fmt.Println("No routes uploaded yet.")
		return nil
	}

	for _, t := range coll {
		fmt.Printf("[%d] %s\n", t.ID, t.Name)
		fmt.Printf("  - Distance: %s\n", render.FormatMeters(t.Distance))
		fmt.Printf("  - Elevation Gain: %s\n", render.FormatMeters(t.Elevation))
	}

	return nil
}
