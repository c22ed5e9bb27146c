package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/service"
)

// HandlerSet binds the four Antipole Tree MCP tools to a shared
// Dependencies instance.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a HandlerSet over deps.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	return &HandlerSet{deps: deps}
}

func toolArgs(request mcptypes.CallToolRequest) (map[string]interface{}, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid arguments format")
	}
	return args, nil
}

func errResult(err error) (*mcptypes.CallToolResult, error) {
	return mcptypes.NewToolResultError(err.Error()), nil
}

func jsonResult(v interface{}) (*mcptypes.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcptypes.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcptypes.NewToolResultText(string(data)), nil
}

// HandleBuildIndex handles the build_index tool: constructs a tree from
// an explicit point set or a generated random dataset, and makes it the
// session's active index for subsequent range_search/knn_search/
// tree_stats calls.
func (h *HandlerSet) HandleBuildIndex(ctx context.Context, request mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
	raw, err := toolArgs(request)
	if err != nil {
		return errResult(err)
	}
	args, err := decodeArgs[BuildIndexArgs](raw)
	if err != nil {
		return errResult(err)
	}

	req := domain.BuildRequest{
		TargetRadius:  args.TargetRadius,
		DimensionHint: args.Dimension,
		GenerateCount: args.Generate,
		CoordMax:      args.CoordMax,
		Seed:          args.Seed,
	}
	if len(args.Points) > 0 {
		points := make([]domain.PointRecord, len(args.Points))
		for i, p := range args.Points {
			points[i] = domain.PointRecord{ID: p.ID, Coord: p.Coord}
		}
		req.Points = points
		req.GenerateCount = 0
		if req.DimensionHint <= 0 {
			// dimension is only required with generate; explicit point
			// sets fall back to the configured tournament dimension hint.
			req.DimensionHint = h.deps.Config().Build.DimensionHint
		}
	}

	builder := service.NewBuildService(nil)
	result, err := builder.Build(ctx, req)
	if err != nil {
		return errResult(err)
	}
	h.deps.SetIndex(result)

	return jsonResult(result.Response)
}

// HandleRangeSearch handles the range_search tool against the session's
// active index.
func (h *HandlerSet) HandleRangeSearch(ctx context.Context, request mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
	raw, err := toolArgs(request)
	if err != nil {
		return errResult(err)
	}
	args, err := decodeArgs[RangeSearchArgs](raw)
	if err != nil {
		return errResult(err)
	}

	index, err := h.deps.Index()
	if err != nil {
		return errResult(err)
	}

	querier := service.NewQueryService(index.Tree)
	resp, err := querier.RangeSearch(ctx, domain.RangeQueryRequest{
		Query:  domain.PointRecord{Coord: args.Query},
		Radius: args.Radius,
	})
	if err != nil {
		return errResult(err)
	}
	return jsonResult(resp)
}

// HandleKNNSearch handles the knn_search tool against the session's
// active index.
func (h *HandlerSet) HandleKNNSearch(ctx context.Context, request mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
	raw, err := toolArgs(request)
	if err != nil {
		return errResult(err)
	}
	args, err := decodeArgs[KNNSearchArgs](raw)
	if err != nil {
		return errResult(err)
	}

	index, err := h.deps.Index()
	if err != nil {
		return errResult(err)
	}

	querier := service.NewQueryService(index.Tree)
	resp, err := querier.NearestNeighborSearch(ctx, domain.KNNQueryRequest{
		Query: domain.PointRecord{Coord: args.Query},
		K:     args.K,
	})
	if err != nil {
		return errResult(err)
	}
	return jsonResult(resp)
}

// HandleTreeStats handles the tree_stats tool: reports the shape of the
// session's active index without running a search.
func (h *HandlerSet) HandleTreeStats(ctx context.Context, request mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
	raw, err := toolArgs(request)
	if err != nil {
		return errResult(err)
	}
	if _, err := decodeArgs[TreeStatsArgs](raw); err != nil {
		return errResult(err)
	}

	index, err := h.deps.Index()
	if err != nil {
		return errResult(err)
	}
	return jsonResult(index.Response.Stats)
}
