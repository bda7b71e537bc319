package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all routes",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	s, coll, err := loadCollection()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if coll.Len() == 0 {
		return nil
	}

	if yes, err := cmd.Flags().GetBool("yes"); err != nil || !yes {
		confirmed := false
		prompt := survey.Confirm{
			Message: fmt.Sprintf("Delete all %d routes?", coll.Len()),
		}
		err := survey.AskOne(&prompt, &confirmed)
		exitOnInterrupt(err)
		if err != nil {
			return err
		}

		if !confirmed {
			return nil
		}
	}

	coll.Clear()
	if err := s.Save(coll); err != nil {
		return fmt.Errorf("could not save routes: %w", err)
	}

	fmt.Println("All routes have been cleared.")
	return nil
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
