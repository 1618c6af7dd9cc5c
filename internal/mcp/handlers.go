package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zkmedar/ctcaematch/internal/ctcae"
)

// handleMatchSymptom runs the full matching pipeline for a symptom description.
func (s *Server) handleMatchSymptom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symptom, err := request.RequireString("symptom")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: symptom"), nil
	}
	if strings.TrimSpace(symptom) == "" {
		return mcp.NewToolResultError("symptom must not be empty"), nil
	}

	details := request.GetString("details", "")

	result := s.matcher.Match(ctx, symptom, details)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

// handleLookupTerm returns the full record for a single CTCAE term.
func (s *Server) handleLookupTerm(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: term"), nil
	}

	term := s.repo.TermByName(name)
	if term == nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No CTCAE term named %q. Use list_categories to browse available terms.",
			name,
		)), nil
	}

	return mcp.NewToolResultText(formatTerm(term)), nil
}

// handleListCategories lists system organ classes, or the terms within one.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if category := request.GetString("category", ""); category != "" {
		terms := s.repo.TermsByCategory(category)
		if len(terms) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf(
				"No terms found for system organ class %q.",
				category,
			)), nil
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d term(s) in %s:\n", len(terms), category))
		for _, t := range terms {
			sb.WriteString(fmt.Sprintf("- %s\n", t.CTCAETerm))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}

	categories := s.repo.Categories()
	if len(categories) == 0 {
		return mcp.NewToolResultText("No CTCAE data loaded. Run `ctcaematch process` and `ctcaematch index` first."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d system organ class(es):\n", len(categories)))
	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("- %s\n", c))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatTerm renders a term record as readable text for agent consumption.
func formatTerm(term *ctcae.TermRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("CTCAE Term: %s\n", term.CTCAETerm))
	sb.WriteString(fmt.Sprintf("MedDRA Code: %s\n", term.MedDRACode))
	sb.WriteString(fmt.Sprintf("MedDRA SOC: %s\n", term.MedDRASOC))
	if term.Definition != "" {
		sb.WriteString(fmt.Sprintf("Definition: %s\n", term.Definition))
	}
	if term.NavigationalNote != "" {
		sb.WriteString(fmt.Sprintf("Note: %s\n", term.NavigationalNote))
	}

	if len(term.Grades) > 0 {
		sb.WriteString("\nGrades:\n")
		for _, g := range term.Grades {
			sb.WriteString(fmt.Sprintf("  Grade %s: %s\n", g.Grade, g.Description))
		}
	}

	return sb.String()
}
