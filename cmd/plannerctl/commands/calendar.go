package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"content-planner/cmd/plannerctl/output"
	"content-planner/internal/calendar"
	"content-planner/internal/models"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YEAR MONTH]",
	Short: "Print a month of the posting calendar",
	Example: `  plannerctl calendar
  plannerctl calendar 2024 4`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("want no arguments or YEAR MONTH, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		today := models.DateOf(time.Now())
		year, month := today.Year, today.Month
		if len(args) == 2 {
			var err error
			if year, month, err = parseYearMonth(args[0], args[1]); err != nil {
				return err
			}
		}

		posts, err := loadPosts(cmd.Context())
		if err != nil {
			return err
		}
		m := calendar.BuildMonth(posts, year, month, today)
		if jsonOutput {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(m)
		}
		fmt.Fprintln(cmd.OutOrStdout(), output.MonthGrid(m))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func parseYearMonth(y, m string) (int, time.Month, error) {
	year, err := strconv.Atoi(y)
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, fmt.Errorf("invalid year %q", y)
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q: want 1-12", m)
	}
	return year, time.Month(month), nil
}
