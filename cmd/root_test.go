package cmd

import "testing"

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "pomokids" {
		t.Errorf("rootCmd.Use = %q, want pomokids", rootCmd.Use)
	}

	for _, name := range []string{"state", "json"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}

	want := map[string]bool{
		"profiles": false,
		"save":     false,
		"run":      false,
		"scores":   false,
		"history":  false,
		"mcp":      false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, registered := range want {
		if !registered {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunCommandFlags(t *testing.T) {
	if runCmd.Use != "run <profile>" {
		t.Errorf("runCmd.Use = %q, want %q", runCmd.Use, "run <profile>")
	}

	flag := runCmd.Flags().Lookup("completed")
	if flag == nil {
		t.Fatal("missing flag --completed")
	}
	if flag.Shorthand != "c" {
		t.Errorf("completed shorthand = %q, want c", flag.Shorthand)
	}
}

func TestHistoryCommandFlags(t *testing.T) {
	flag := historyCmd.Flags().Lookup("limit")
	if flag == nil {
		t.Fatal("missing flag --limit")
	}
	if flag.Shorthand != "n" {
		t.Errorf("limit shorthand = %q, want n", flag.Shorthand)
	}
}
