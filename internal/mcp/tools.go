package mcp

import "github.com/mark3labs/mcp-go/mcp"

// matchSymptomTool defines the match_symptom MCP tool.
var matchSymptomTool = mcp.NewTool("match_symptom",
	mcp.WithDescription("Standardize a free-text symptom description into a CTCAE term with a severity grade. Returns the matched term, grade, MedDRA system organ class, confidence, and rationale as JSON."),
	mcp.WithString("symptom",
		mcp.Required(),
		mcp.Description("Free-text symptom description, e.g. \"severe headache for 3 days\""),
	),
	mcp.WithString("details",
		mcp.Description("Additional clinical context used for grading, e.g. onset, frequency, interventions"),
	),
)

// lookupTermTool defines the lookup_term MCP tool.
var lookupTermTool = mcp.NewTool("lookup_term",
	mcp.WithDescription("Look up a CTCAE term by its exact name. Returns the term definition, MedDRA codes, and all severity grade descriptions."),
	mcp.WithString("term",
		mcp.Required(),
		mcp.Description("CTCAE term name, e.g. \"Nausea\". Matching is case-insensitive."),
	),
)

// listCategoriesTool defines the list_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_categories",
	mcp.WithDescription("List the MedDRA system organ classes covered by the loaded CTCAE data, or the terms within one class."),
	mcp.WithString("category",
		mcp.Description("Optional system organ class; when set, returns the CTCAE terms in that class instead of the class list"),
	),
)
