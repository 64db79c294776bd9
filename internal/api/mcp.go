package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/profile"
)

const (
	catalogResourceURI = "catalog://careers"
	maxToolResults     = 8
)

// NewMCPServer creates an MCP server exposing the catalog and the recommender.
func NewMCPServer(deps Deps, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"pathfinder",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("PathFinder recommends careers for students from their interests, subjects and goals."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("recommend_careers",
			mcp.WithDescription("Score the career catalog against a student profile and return the best matches with explanations."),
			mcp.WithString("name", mcp.Description("Student name")),
			mcp.WithArray("interests", mcp.Description("Interests, e.g. programming or visual arts"), mcp.WithStringItems()),
			mcp.WithArray("hobbies", mcp.Description("Hobbies"), mcp.WithStringItems()),
			mcp.WithArray("preferred_subjects", mcp.Description("Favorite school subjects"), mcp.WithStringItems()),
			mcp.WithArray("extracurricular_activities", mcp.Description("Clubs, teams and other activities"), mcp.WithStringItems()),
			mcp.WithString("career_goals", mcp.Description("Career goals in the student's own words")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 8)")),
		),
		mcpRecommend(deps),
	)

	s.AddTool(
		mcp.NewTool("search_careers",
			mcp.WithDescription("Search the career catalog by keyword and optional category."),
			mcp.WithString("query", mcp.Description("Keyword matched against titles, descriptions and skills")),
			mcp.WithString("category", mcp.Description("Category name or slug, e.g. technology")),
		),
		mcpSearch(deps),
	)

	s.AddTool(
		mcp.NewTool("get_career",
			mcp.WithDescription("Return the full catalog entry for a career title."),
			mcp.WithString("title", mcp.Description("Career title"), mcp.Required()),
		),
		mcpGetCareer(deps),
	)

	s.AddResource(
		mcp.NewResource(
			catalogResourceURI,
			"Career Catalog",
			mcp.WithResourceDescription("Every career in the catalog as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceCatalog(deps),
	)

	return s
}

func mcpRecommend(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p := profile.StudentProfile{Name: req.GetString("name", "")}
		p.Merge(profile.Fragment{
			Interests:         req.GetStringSlice("interests", nil),
			Hobbies:           req.GetStringSlice("hobbies", nil),
			PreferredSubjects: req.GetStringSlice("preferred_subjects", nil),
			Extracurriculars:  req.GetStringSlice("extracurricular_activities", nil),
			CareerGoals:       req.GetString("career_goals", ""),
		})

		if !p.HasInterests() && len(p.PreferredSubjects) == 0 && p.CareerGoals == "" {
			return mcpError("at least one of interests, hobbies, preferred_subjects or career_goals is required"), nil
		}

		recs, err := deps.Recommender.Recommend(ctx, &p)
		if err != nil {
			return mcpError(fmt.Sprintf("recommend failed: %v", err)), nil
		}

		limit := req.GetInt("limit", maxToolResults)
		if limit > 0 && limit < len(recs) {
			recs = recs[:limit]
		}

		return mcpJSON(nonNil(recs))
	}
}

func mcpSearch(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		records := deps.Recommender.Catalog().Search(req.GetString("query", ""))

		if raw := req.GetString("category", ""); raw != "" {
			category, err := career.ParseCategory(raw)
			if err != nil {
				return mcpError(err.Error()), nil
			}
			records = filterByCategory(records, category)
		}

		return mcpJSON(records)
	}
}

func mcpGetCareer(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := req.RequireString("title")
		if err != nil {
			return mcpError("title is required"), nil
		}

		record, ok := deps.Recommender.Catalog().ByTitle(title)
		if !ok {
			return mcpError(fmt.Sprintf("career %q not found", title)), nil
		}

		return mcpJSON(record)
	}
}

func mcpResourceCatalog(deps Deps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Recommender.Catalog().All())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      catalogResourceURI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcpText(string(b)), nil
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
