package cmd

import "testing"

func TestParseSetting(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"color=green", "color", "green", false},
		{"note=a=b", "note", "a=b", false},
		{"empty=", "empty", "", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseSetting(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSetting(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if key != tt.wantKey || value != tt.wantValue {
				t.Errorf("parseSetting(%q) = (%q, %q), want (%q, %q)",
					tt.input, key, value, tt.wantKey, tt.wantValue)
			}
		})
	}
}

func TestSaveCommandFlags(t *testing.T) {
	for _, name := range []string{"id", "title", "total", "focus", "break", "alert", "set"} {
		if saveCmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	if flag := saveCmd.Flags().Lookup("title"); flag != nil && flag.Shorthand != "t" {
		t.Errorf("title shorthand = %q, want t", flag.Shorthand)
	}
}
