package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomokids/internal/adapters/display"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show session history",
	Long:  `Display recorded sessions, oldest first. Use --limit to show only the most recent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions := app.controller.Sessions()
		if historyLimit > 0 && len(sessions) > historyLimit {
			sessions = sessions[len(sessions)-historyLimit:]
		}

		if jsonOutput {
			var sessionList []map[string]interface{}
			for _, s := range sessions {
				sessionList = append(sessionList, map[string]interface{}{
					"profile_id":             s.ProfileID,
					"planned_minutes":        s.PlannedMinutes,
					"completed_minutes":      s.CompletedMinutes,
					"completed_focus_blocks": s.CompletedFocusBlocks,
					"session_date":           s.SessionDate.String(),
				})
			}
			data := map[string]interface{}{
				"sessions": sessionList,
				"count":    len(sessionList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal sessions: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println(display.Sessions(sessions))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show only the N most recent sessions (0 = all)")
}
