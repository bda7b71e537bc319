package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete routes by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid route id '%s'", arg)
		}
		ids = append(ids, id)
	}

	s, coll, err := loadCollection()
	if err != nil {
		return err
	}
	defer closeStore(s)

	deleted := 0
	for _, id := range ids {
		t, ok := coll.Remove(id)
		if !ok {
			fmt.Printf("No route with id %d.\n", id)
			continue
		}

		deleted++
		fmt.Printf("%s has been deleted.\n", t.Name)
	}

	if deleted == 0 {
		return nil
	}

	return s.Save(coll)
}
