package cmd

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomokids/internal/adapters/display"
	"github.com/xvierd/pomokids/internal/domain"
)

var runCompleted int

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <profile>",
	Short: "Run one simulated session for a profile",
	Long: `Run (simulate) one session of a profile's schedule and record the
awarded points. The profile argument resolves by exact ID, then exact
title, then fuzzy title match. Without --completed the session counts
as fully completed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := resolveProfile(args[0])
		if err != nil {
			return err
		}

		var completedMinutes *int
		if cmd.Flags().Changed("completed") {
			completedMinutes = &runCompleted
		}

		message, err := app.controller.RunProfileSession(profile.ID, completedMinutes)
		if err != nil {
			return err
		}

		if jsonOutput {
			fmt.Printf("{\n  \"profile_id\": %q,\n  \"message\": %q\n}\n", profile.ID, message)
			return nil
		}

		fmt.Println(display.Status(message))
		return nil
	},
}

// resolveProfile finds a profile by exact ID, exact title, then fuzzy
// title match.
func resolveProfile(arg string) (*domain.TaskProfile, error) {
	profile, err := app.controller.FindProfile(arg)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	profiles := app.controller.ListProfiles()
	titles := make([]string, len(profiles))
	for i, p := range profiles {
		titles[i] = p.Title
	}
	matches := fuzzy.Find(arg, titles)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrProfileNotFound, arg)
	}
	match := profiles[matches[0].Index]
	return &match, nil
}

func init() {
	runCmd.Flags().IntVarP(&runCompleted, "completed", "c", 0, "Minutes actually completed (default: full completion)")
}
