package ports

import "context"

// SearchRequest describes one filesystem search. Exactly one of BaseName
// (exact file base name) or PathSuffix (whole-path suffix, '/'-separated)
// must be set.
type SearchRequest struct {
	Root       string
	BaseName   string
	PathSuffix string
}

// SearchPort executes filesystem searches rooted at a directory. Hidden
// directories are pruned. Implementations return absolute paths; zero
// matches is a successful empty result, not an error.
type SearchPort interface {
	Search(ctx context.Context, req SearchRequest) ([]string, error)
}
