package ports

import (
	"context"

	"github.com/xvierd/pomokids/internal/domain"
)

// MCPStateProvider exposes the presentation boundary to the MCP server.
// This is a driving port (implemented by the application layer).
type MCPStateProvider interface {
	// ListProfiles returns all task profiles.
	ListProfiles() []domain.TaskProfile

	// UpsertProfile saves a profile, replacing any with the same ID.
	UpsertProfile(profile domain.TaskProfile) error

	// RunProfileSession simulates one session for a profile and returns
	// a human-readable status message.
	RunProfileSession(profileID string, completedMinutes *int) (string, error)

	// Scores returns the cumulative score snapshot.
	Scores() domain.ScoreSnapshot

	// NextRewardProgress returns the lowest-target unreached reward for
	// a period and the points still needed, or ("", 0) when none remain.
	NextRewardProgress(period domain.Period) (string, int)
}

// MCPHandler manages the MCP server lifecycle.
// This is a driven port (implemented by adapters).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error
}
