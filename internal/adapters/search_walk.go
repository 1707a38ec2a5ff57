package adapters

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"atest-finder/internal/ports"
)

// WalkSearch is the native search implementation: a directory walk that
// prunes hidden directories and honors context deadlines.
type WalkSearch struct{}

func NewWalkSearch() WalkSearch {
	return WalkSearch{}
}

func (WalkSearch) Search(ctx context.Context, req ports.SearchRequest) ([]string, error) {
	if err := validateSearchRequest(req); err != nil {
		return nil, err
	}
	root, err := filepath.Abs(req.Root)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root is not a valid path").
			WithCause(err)
	}

	var matches []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesRequest(path, d.Name(), req) {
			matches = append(matches, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, mapSearchFailure(walkErr)
	}
	return matches, nil
}

func matchesRequest(path string, base string, req ports.SearchRequest) bool {
	if req.BaseName != "" {
		return base == req.BaseName
	}
	suffix := filepath.FromSlash(req.PathSuffix)
	return path == suffix || strings.HasSuffix(path, string(filepath.Separator)+suffix)
}

func validateSearchRequest(req ports.SearchRequest) error {
	if strings.TrimSpace(req.Root) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root is empty")
	}
	if (req.BaseName == "") == (req.PathSuffix == "") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search request needs exactly one of base name or path suffix")
	}
	return nil
}

// mapSearchFailure keeps a deadline expiry in the not-found channel,
// tagged distinctly, while genuine tool failures stay infrastructure
// errors.
func mapSearchFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("search timed out").
			WithCause(err)
	}
	if errors.Is(err, context.Canceled) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("search canceled").
			WithCause(err)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to scan search root").
		WithCause(err)
}

var _ ports.SearchPort = WalkSearch{}
