package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomokids/internal/adapters/display"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List task profiles",
	Long:  `List all configured task profiles and their block settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := app.controller.ListProfiles()

		if jsonOutput {
			var profileList []map[string]interface{}
			for _, p := range profiles {
				profileList = append(profileList, map[string]interface{}{
					"profile_id":               p.ID,
					"title":                    p.Title,
					"total_minutes":            p.TotalMinutes,
					"focus_minutes":            p.FocusMinutes,
					"break_minutes":            p.BreakMinutes,
					"alert_before_end_minutes": p.AlertBeforeEnd,
					"settings":                 p.Settings,
				})
			}
			data := map[string]interface{}{
				"profiles": profileList,
				"count":    len(profileList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal profiles: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println(display.Profiles(profiles))
		return nil
	},
}
