package core

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"atest-finder/internal/ports"
	"atest-finder/internal/types"
)

const testFileExtension = ".java"

// Matches the package declaration line of a java file: group 1 is
// "foo.bar" of "package foo.bar;".
var packageRe = regexp.MustCompile(`(?i)^\s*package\s+([^;]+)\s*;`)

// Locator resolves a classified locator to a concrete test file and its
// enclosing module directory. Disambiguation between multiple hits goes
// through the injected SelectionPort; the core never touches a console.
type Locator struct {
	Search    ports.SearchPort
	Selection ports.SelectionPort
	Root      string
	Marker    string
	Timeout   time.Duration
}

func NewLocator(search ports.SearchPort, selection ports.SelectionPort, root string, marker string) Locator {
	return Locator{
		Search:    search,
		Selection: selection,
		Root:      root,
		Marker:    marker,
		Timeout:   30 * time.Second,
	}
}

// Locate finds the file a locator names under searchRoot. Zero matches
// is CodeNotFound; a single match wins; multiple matches are handed to
// the selection strategy.
func (l Locator) Locate(ctx context.Context, locator string, kind types.ReferenceKind, searchRoot string) (string, error) {
	assert.NotEmpty(ctx, locator, "locator must not be empty")

	req := ports.SearchRequest{Root: searchRoot}
	switch kind {
	case types.ReferenceKindQualifiedClass:
		req.PathSuffix = strings.ReplaceAll(locator, ".", "/") + testFileExtension
	case types.ReferenceKindClass:
		req.BaseName = locator + testFileExtension
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported reference kind: " + string(kind))
	}

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	start := time.Now()
	matches, err := l.Search.Search(ctx, req)
	if err != nil {
		return "", err
	}
	log.Debug().
		Str("locator", locator).
		Int("matches", len(matches)).
		Dur("elapsed", time.Since(start)).
		Msg("search completed")

	switch len(matches) {
	case 0:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no test file found for " + locator)
	case 1:
		return matches[0], nil
	}

	sort.Strings(matches)
	index, err := l.Selection.Choose(matches)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(matches) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("selection index out of range")
	}
	return matches[index], nil
}

// ResolveQualifiedName combines the package declared in the test file
// with the file's base name. Scanning stops at the first package line.
func (l Locator) ResolveQualifiedName(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read test file").
			WithCause(err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		match := packageRe.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		pkg := strings.TrimSpace(match[1])
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return pkg + "." + base, nil
	}
	if err := scanner.Err(); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan test file").
			WithCause(err)
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no package declaration in " + path)
}

// FindModuleRoot walks from start up to the repository root, one parent
// at a time, and returns the first directory containing the module
// marker, relative to the root.
func (l Locator) FindModuleRoot(start string) (string, error) {
	root, err := canonicalDir(l.Root)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository root is not a directory").
			WithCause(err)
	}
	current, err := canonicalDir(start)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("start directory does not exist").
			WithCause(err)
	}
	if !isEqualOrSubDir(current, root) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(start + " is not under repository root " + l.Root)
	}
	for current != root {
		marker := filepath.Join(current, l.Marker)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return filepath.Rel(root, current)
		}
		current = filepath.Dir(current)
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no enclosing module for " + start)
}

// canonicalDir resolves symlinks and returns an absolute path, so the
// ancestor walk compares real locations.
func canonicalDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", os.ErrInvalid
	}
	return resolved, nil
}

// isEqualOrSubDir reports whether sub equals parent or descends from it.
// Both arguments must already be canonical.
func isEqualOrSubDir(sub string, parent string) bool {
	rel, err := filepath.Rel(parent, sub)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
