package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the four Antipole Tree MCP tools with s, bound
// to the handlers in h.
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	// Tool 1: build_index - construct the session's active tree
	s.AddTool(mcp.NewTool("build_index",
		mcp.WithDescription("Build an Antipole Tree from an explicit point set or a generated random dataset, and make it the active index for range_search, knn_search, and tree_stats"),
		mcp.WithArray("points",
			mcp.Description("Explicit points to index, each {id, coord}. Omit to generate a random dataset instead.")),
		mcp.WithNumber("generate",
			mcp.Description("Generate this many random points when points is omitted")),
		mcp.WithNumber("dimension",
			mcp.Description("Dimensionality of generated points, required with generate")),
		mcp.WithNumber("coord_max",
			mcp.Description("Max coordinate value for generated points (default 255)")),
		mcp.WithNumber("target_radius",
			mcp.Description("Target leaf cluster radius")),
		mcp.WithNumber("seed",
			mcp.Description("RNG seed for generation and tree construction, 0 picks a random seed")),
	), h.HandleBuildIndex)

	// Tool 2: range_search - every indexed point within a radius
	s.AddTool(mcp.NewTool("range_search",
		mcp.WithDescription("Return every point in the active index within a radius of a query point"),
		mcp.WithArray("query",
			mcp.Required(),
			mcp.Description("Query point coordinate")),
		mcp.WithNumber("radius",
			mcp.Required(),
			mcp.Description("Search radius")),
	), h.HandleRangeSearch)

	// Tool 3: knn_search - the k nearest indexed points
	s.AddTool(mcp.NewTool("knn_search",
		mcp.WithDescription("Return the k nearest points in the active index to a query point"),
		mcp.WithArray("query",
			mcp.Required(),
			mcp.Description("Query point coordinate")),
		mcp.WithNumber("k",
			mcp.Required(),
			mcp.Description("Number of neighbors to return")),
	), h.HandleKNNSearch)

	// Tool 4: tree_stats - shape of the active index
	s.AddTool(mcp.NewTool("tree_stats",
		mcp.WithDescription("Report the active index's shape: node/leaf counts, max depth, average leaf size and radius"),
	), h.HandleTreeStats)
}
