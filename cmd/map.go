package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bgraf/routetracker/config"
	"github.com/bgraf/routetracker/filesystem"
	"github.com/bgraf/routetracker/render"
	"github.com/spf13/cobra"
)

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Generate an HTML map showing all routes",
	RunE:  runMapCmd,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringP("output", "o", config.DefaultMapFile(), "Output HTML file")
}

func runMapCmd(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	s, coll, err := loadCollection()
	if err != nil {
		return err
	}
	defer closeStore(s)

	var buf bytes.Buffer
	if err := render.WriteMapHTML(&buf, coll, render.ComputeView(coll, render.DefaultView()), config.MapTiles()); err != nil {
		return fmt.Errorf("could not render map: %w", err)
	}

	mapFile := filesystem.Abs(output)
	if err := os.WriteFile(mapFile, buf.Bytes(), 0o666); err != nil {
		return fmt.Errorf("could not write map file: %w", err)
	}

	fmt.Printf("Wrote map with %d routes to %s\n", coll.Len(), mapFile)
	return nil
}
