package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomokids/internal/adapters/display"
	"github.com/xvierd/pomokids/internal/domain"
)

// scoresCmd represents the scores command
var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show scores and next rewards",
	Long:  `Display the cumulative score snapshot and the next unreached reward for each period.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores := app.controller.Scores()

		rows := make([]display.ProgressRow, 0, len(domain.ValidPeriods))
		for _, period := range domain.ValidPeriods {
			title, remaining := app.controller.NextRewardProgress(period)
			rows = append(rows, display.ProgressRow{Period: period, Title: title, Remaining: remaining})
		}

		if jsonOutput {
			progress := map[string]interface{}{}
			for _, row := range rows {
				progress[string(row.Period)] = map[string]interface{}{
					"reward_title":     row.Title,
					"remaining_points": row.Remaining,
					"all_reached":      row.Title == "",
				}
			}
			data := map[string]interface{}{
				"scores": map[string]interface{}{
					"weekly":  scores.Weekly,
					"monthly": scores.Monthly,
					"yearly":  scores.Yearly,
				},
				"next_rewards": progress,
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal scores: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println(display.Scores(scores, rows))
		return nil
	},
}
