package app

import (
	"time"

	"atest-finder/internal/types"
)

type ResolveRequest struct {
	// References are the raw user tokens, e.g. "HostTest#testRun".
	References []string
	// SearchRoot narrows the search to a subtree of the repository
	// root. Empty means the whole root.
	SearchRoot string
	// OutDir is the relative out-directory prefix applied to device
	// artifact targets.
	OutDir string
	// SearchTimeout bounds each filesystem search. Zero uses the
	// locator default.
	SearchTimeout time.Duration
}

type ResolveResult struct {
	Resolutions []types.ReferenceResolution
}

// Failed counts references that did not resolve.
func (r ResolveResult) Failed() int {
	failed := 0
	for _, res := range r.Resolutions {
		if res.Err != "" {
			failed++
		}
	}
	return failed
}

type ModulesRequest struct {
	Names []string
}

type ModuleCheck struct {
	Name     string
	IsModule bool
}

type ModulesResult struct {
	Checks []ModuleCheck
}
