package loader

import (
	"context"

	"github.com/laminarconf/laminar/pkg/laminar"
)

// DirectLoader wraps an already-parsed tree (LoadRequest.DirectData), the
// no-op loader spec.md §4.7 describes for callers who've already got their
// data in memory and just want it run through the same LoadRequest/env-split
// plumbing as every other source.
type DirectLoader struct{}

// NewDirect returns the direct-data loader.
func NewDirect() *DirectLoader { return &DirectLoader{} }

// data extracts the request's DirectData; Load special-cases *DirectLoader
// so this runs instead of Read+Parse, since there is nothing to read or
// parse.
func (l *DirectLoader) data(req LoadRequest) laminar.Mapping {
	if req.DirectData == nil {
		return laminar.Mapping{}
	}
	return req.DirectData
}

// Read is never called for a DirectLoader; Load bypasses it. Present only
// to satisfy the Loader interface.
func (l *DirectLoader) Read(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

// Parse is never called for a DirectLoader either, for the same reason.
func (l *DirectLoader) Parse(raw []byte) (laminar.Mapping, error) {
	return laminar.Mapping{}, nil
}

// SplitEnvs implements the shared top-level-key-as-env convention.
func (l *DirectLoader) SplitEnvs(tree laminar.Mapping, hasExplicitEnvs bool, defaultEnv string) (map[string]laminar.Mapping, error) {
	return defaultSplitEnvs(tree, hasExplicitEnvs, defaultEnv)
}
