package app

import (
	"context"
	"io"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/reporter"
	"github.com/antipole-index/antipole/service"
)

// BuildUseCase orchestrates constructing an index and reporting the
// outcome: validate the request, build the tree, render a BuildResponse.
type BuildUseCase struct {
	builder *service.BuildService
}

// NewBuildUseCase creates a BuildUseCase backed by builder.
func NewBuildUseCase(builder *service.BuildService) *BuildUseCase {
	return &BuildUseCase{builder: builder}
}

// Execute builds a tree from req and writes a build report in format to
// w. It returns the service.Result so a caller in the same process (the
// query use case) can reuse the built tree without rebuilding it from
// scratch.
func (uc *BuildUseCase) Execute(ctx context.Context, req domain.BuildRequest, format domain.OutputFormat, w io.Writer) (*service.Result, error) {
	result, err := uc.builder.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	if w != nil {
		if err := reporter.New(format, w).ReportBuild(result.Response); err != nil {
			return result, domain.NewOutputError("failed to write build report", err)
		}
	}
	return result, nil
}
