// Package mcp provides the MCP (Model Context Protocol) server
// implementation exposing the presentation boundary to AI assistants.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/pomokids/internal/domain"
	"github.com/xvierd/pomokids/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.MCPStateProvider
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.MCPStateProvider) *Server {
	s := &Server{
		stateProvider: stateProvider,
	}

	s.server = server.NewMCPServer(
		"pomokids",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: list_profiles
	s.server.AddTool(
		mcp.NewTool(
			"list_profiles",
			mcp.WithDescription("List all task profiles with their block configuration"),
		),
		s.handleListProfiles,
	)

	// Tool: save_profile
	saveProfileTool := mcp.NewTool(
		"save_profile",
		mcp.WithDescription("Create or replace a task profile"),
		mcp.WithString(
			"profile_id",
			mcp.Description("Profile ID to replace; omit to create a new profile"),
		),
		mcp.WithString(
			"title",
			mcp.Required(),
			mcp.Description("Display name of the profile"),
		),
		mcp.WithNumber(
			"total_minutes",
			mcp.Required(),
			mcp.Description("Total allocated minutes per session"),
		),
		mcp.WithNumber(
			"focus_minutes",
			mcp.Description("Focus block length in minutes (default: 25)"),
		),
		mcp.WithNumber(
			"break_minutes",
			mcp.Description("Break block length in minutes (default: 5)"),
		),
		mcp.WithNumber(
			"alert_before_end_minutes",
			mcp.Description("Remaining-time alert threshold in minutes (default: 5)"),
		),
	)
	s.server.AddTool(saveProfileTool, s.handleSaveProfile)

	// Tool: run_session
	runSessionTool := mcp.NewTool(
		"run_session",
		mcp.WithDescription("Run one simulated session for a profile and record the score"),
		mcp.WithString(
			"profile_id",
			mcp.Required(),
			mcp.Description("The ID of the profile to run"),
		),
		mcp.WithNumber(
			"completed_minutes",
			mcp.Description("Minutes actually completed (default: full completion)"),
		),
	)
	s.server.AddTool(runSessionTool, s.handleRunSession)

	// Tool: get_scores
	s.server.AddTool(
		mcp.NewTool(
			"get_scores",
			mcp.WithDescription("Get the cumulative weekly/monthly/yearly score snapshot"),
		),
		s.handleGetScores,
	)

	// Tool: get_reward_progress
	rewardProgressTool := mcp.NewTool(
		"get_reward_progress",
		mcp.WithDescription("Get the next unreached reward for a period and the points still needed"),
		mcp.WithString(
			"period",
			mcp.Required(),
			mcp.Description("Reward period: weekly, monthly, yearly"),
			mcp.Enum("weekly", "monthly", "yearly"),
		),
	)
	s.server.AddTool(rewardProgressTool, s.handleGetRewardProgress)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// handleListProfiles handles the list_profiles tool.
func (s *Server) handleListProfiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profiles := s.stateProvider.ListProfiles()

	profileList := make([]map[string]interface{}, 0, len(profiles))
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
	result := map[string]interface{}{
		"profiles": profileList,
		"count":    len(profileList),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profiles: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleSaveProfile handles the save_profile tool.
func (s *Server) handleSaveProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := request.GetString("title", "")
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	totalMinutes := int(request.GetFloat("total_minutes", 0))
	if totalMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	profile := domain.TaskProfile{
		ID:             request.GetString("profile_id", ""),
		Title:          title,
		TotalMinutes:   totalMinutes,
		FocusMinutes:   int(request.GetFloat("focus_minutes", 25)),
		BreakMinutes:   int(request.GetFloat("break_minutes", 5)),
		AlertBeforeEnd: int(request.GetFloat("alert_before_end_minutes", 5)),
		Settings:       map[string]string{},
	}
	if profile.ID == "" {
		profile.ID = domain.NewID()
	}

	if err := s.stateProvider.UpsertProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	jsonData, err := json.MarshalIndent(map[string]interface{}{
		"profile_id": profile.ID,
		"title":      profile.Title,
		"saved":      true,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleRunSession handles the run_session tool.
func (s *Server) handleRunSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileID := request.GetString("profile_id", "")
	if profileID == "" {
		return nil, fmt.Errorf("profile_id is required")
	}

	var completedMinutes *int
	// JSON numbers arrive as float64; -1 sentinel distinguishes "absent"
	// from a legitimate zero.
	if c := request.GetFloat("completed_minutes", -1); c >= 0 {
		m := int(c)
		completedMinutes = &m
	}

	message, err := s.stateProvider.RunProfileSession(profileID, completedMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to run session: %w", err)
	}

	return mcp.NewToolResultText(message), nil
}

// handleGetScores handles the get_scores tool.
func (s *Server) handleGetScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scores := s.stateProvider.Scores()

	jsonData, err := json.MarshalIndent(map[string]interface{}{
		"weekly":  scores.Weekly,
		"monthly": scores.Monthly,
		"yearly":  scores.Yearly,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scores: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetRewardProgress handles the get_reward_progress tool.
func (s *Server) handleGetRewardProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	period, err := domain.ValidatePeriod(request.GetString("period", ""))
	if err != nil {
		return nil, err
	}

	title, remaining := s.stateProvider.NextRewardProgress(period)

	jsonData, err := json.MarshalIndent(map[string]interface{}{
		"period":           string(period),
		"reward_title":     title,
		"remaining_points": remaining,
		"all_reached":      title == "",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal progress: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
