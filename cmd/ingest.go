package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bgraf/routetracker/filesystem"
	"github.com/bgraf/routetracker/geotrack"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest FILE-OR-DIRECTORY...",
	Short: "Upload track files and compute their distance and elevation gain",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	paths, err := filesystem.GatherFiles(args, geotrack.IsTrackFile)
	if err != nil {
		return err
	}

	s, coll, err := loadCollection()
	if err != nil {
		return err
	}
	defer closeStore(s)

	files, unreadable := readTrackFiles(paths)

	result := geotrack.IngestBatch(files, &coll)
	result.Failed = append(unreadable, result.Failed...)

	if err := s.Save(coll); err != nil {
		return fmt.Errorf("could not save routes: %w", err)
	}

	if len(result.Succeeded) > 0 {
		fmt.Printf("Successfully uploaded: %s.\n", strings.Join(result.Succeeded, ", "))
	}
	if len(result.Failed) > 0 {
		fmt.Printf("Failed to upload: %s.\n", strings.Join(result.Failed, ", "))
	}

	return nil
}

// readTrackFiles reads every path. Files that cannot be read are returned as failure
// descriptions so the remaining files are still ingested.
func readTrackFiles(paths []string) (files []geotrack.File, failed []string) {
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("reading tracks"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	files = make([]geotrack.File, 0, len(paths))
	failed = []string{}
	for _, path := range paths {
		_ = bar.Add(1)

		content, err := os.ReadFile(path)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s (error: %s)", filepath.Base(path), err))
			continue
		}

		files = append(files, geotrack.File{Name: filepath.Base(path), Content: content})
	}

	return
}
