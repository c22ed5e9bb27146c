package app

import (
	"context"
	"fmt"
	"io"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/reporter"
	"github.com/antipole-index/antipole/service"
)

// QueryKind selects which search operation QueryUseCase performs.
type QueryKind int

const (
	// QueryKindRange runs a range search.
	QueryKindRange QueryKind = iota
	// QueryKindKNN runs a k-nearest-neighbor search.
	QueryKindKNN
)

// QueryUseCase orchestrates building an index (or reusing one a prior
// BuildUseCase already built in this process) and running a single
// query against it.
type QueryUseCase struct {
	builder *service.BuildService
}

// NewQueryUseCase creates a QueryUseCase backed by builder.
func NewQueryUseCase(builder *service.BuildService) *QueryUseCase {
	return &QueryUseCase{builder: builder}
}

// Execute builds buildReq (when tree is nil) and runs the query named by
// kind, writing a query report in format to w.
func (uc *QueryUseCase) Execute(
	ctx context.Context,
	tree *service.Result,
	buildReq domain.BuildRequest,
	kind QueryKind,
	rangeReq domain.RangeQueryRequest,
	knnReq domain.KNNQueryRequest,
	format domain.OutputFormat,
	w io.Writer,
) error {
	if tree == nil {
		built, err := uc.builder.Build(ctx, buildReq)
		if err != nil {
			return err
		}
		tree = built
	}

	qs := service.NewQueryService(tree.Tree)

	var resp *domain.QueryResponse
	var err error
	switch kind {
	case QueryKindRange:
		resp, err = qs.RangeSearch(ctx, rangeReq)
	case QueryKindKNN:
		resp, err = qs.NearestNeighborSearch(ctx, knnReq)
	default:
		return fmt.Errorf("query use case: unknown query kind %d", kind)
	}
	if err != nil {
		return err
	}

	if w == nil {
		return nil
	}
	if err := reporter.New(format, w).ReportQuery(resp); err != nil {
		return domain.NewOutputError("failed to write query report", err)
	}
	return nil
}
