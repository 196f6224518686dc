package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"content-planner/cmd/plannerctl/output"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List stored posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadPosts(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(posts)
		}
		if len(posts) == 0 {
			output.Warning("No posts scheduled")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), output.PostTable(posts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postsCmd)
}
