package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomokids/internal/domain"
)

var (
	saveID       string
	saveTitle    string
	saveTotal    int
	saveFocus    int
	saveBreak    int
	saveAlert    int
	saveSettings []string
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or replace a task profile",
	Long: `Create a new task profile or replace an existing one by ID.
Omitted block lengths fall back to the configured defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if saveTitle == "" {
			return domain.ErrEmptyProfileTitle
		}
		if saveTotal <= 0 {
			return domain.ErrInvalidDuration
		}

		profile := domain.TaskProfile{
			ID:             saveID,
			Title:          saveTitle,
			TotalMinutes:   saveTotal,
			FocusMinutes:   saveFocus,
			BreakMinutes:   saveBreak,
			AlertBeforeEnd: saveAlert,
			Settings:       map[string]string{},
		}
		if profile.ID == "" {
			profile.ID = domain.NewID()
		}
		if !cmd.Flags().Changed("focus") {
			profile.FocusMinutes = app.config.Defaults.FocusMinutes
		}
		if !cmd.Flags().Changed("break") {
			profile.BreakMinutes = app.config.Defaults.BreakMinutes
		}
		if !cmd.Flags().Changed("alert") {
			profile.AlertBeforeEnd = app.config.Defaults.AlertBeforeEndMinutes
		}
		if profile.FocusMinutes <= 0 || profile.BreakMinutes <= 0 {
			return domain.ErrInvalidBlockConfig
		}

		for _, pair := range saveSettings {
			key, value, err := parseSetting(pair)
			if err != nil {
				return err
			}
			profile.Settings[key] = value
		}

		if err := app.controller.UpsertProfile(profile); err != nil {
			return err
		}

		fmt.Printf("✅ Saved profile %q (ID: %s)\n", profile.Title, profile.ID)
		return nil
	},
}

// parseSetting splits a key=value pair.
func parseSetting(pair string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid setting %q: expected key=value", pair)
	}
	return key, value, nil
}

func init() {
	saveCmd.Flags().StringVar(&saveID, "id", "", "Profile ID to replace (default: generate a new one)")
	saveCmd.Flags().StringVarP(&saveTitle, "title", "t", "", "Display name of the profile")
	saveCmd.Flags().IntVar(&saveTotal, "total", 0, "Total allocated minutes per session")
	saveCmd.Flags().IntVar(&saveFocus, "focus", 0, "Focus block length in minutes")
	saveCmd.Flags().IntVar(&saveBreak, "break", 0, "Break block length in minutes")
	saveCmd.Flags().IntVar(&saveAlert, "alert", 0, "Remaining-time alert threshold in minutes")
	saveCmd.Flags().StringArrayVar(&saveSettings, "set", nil, "Profile setting as key=value (repeatable)")
}
