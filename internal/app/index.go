package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// WriteIndex builds the package index and writes it to a YAML file.
func (s Service) WriteIndex(ctx context.Context, req WriteIndexRequest) (WriteIndexResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return WriteIndexResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index output path is required")
	}

	index, _, err := s.buildIndex(ctx, req.Refresh)
	if err != nil {
		return WriteIndexResult{}, err
	}
	if err := s.IndexWriter.Write(path, index); err != nil {
		return WriteIndexResult{}, err
	}
	return WriteIndexResult{Packages: index.Len()}, nil
}
