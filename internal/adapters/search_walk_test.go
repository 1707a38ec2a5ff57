package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atest-finder/internal/ports"
)

func writeFixtureFile(t *testing.T, root string, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestWalkSearchBaseName(t *testing.T) {
	root := t.TempDir()
	want := writeFixtureFile(t, root, "a/b/HostTest.java")
	writeFixtureFile(t, root, "a/b/OtherTest.java")

	matches, err := NewWalkSearch().Search(t.Context(), ports.SearchRequest{
		Root:     root,
		BaseName: "HostTest.java",
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{want}, matches); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestWalkSearchPathSuffix(t *testing.T) {
	root := t.TempDir()
	want := writeFixtureFile(t, root, "src/com/foo/Bar.java")
	writeFixtureFile(t, root, "src/com/other/Bar.java")

	matches, err := NewWalkSearch().Search(t.Context(), ports.SearchRequest{
		Root:       root,
		PathSuffix: "com/foo/Bar.java",
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{want}, matches); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestWalkSearchPrunesHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, ".git/HostTest.java")
	want := writeFixtureFile(t, root, "visible/HostTest.java")

	matches, err := NewWalkSearch().Search(t.Context(), ports.SearchRequest{
		Root:     root,
		BaseName: "HostTest.java",
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{want}, matches); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestWalkSearchEmptyResultIsSuccess(t *testing.T) {
	matches, err := NewWalkSearch().Search(t.Context(), ports.SearchRequest{
		Root:     t.TempDir(),
		BaseName: "Nothing.java",
	})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWalkSearchRequestValidation(t *testing.T) {
	_, err := NewWalkSearch().Search(t.Context(), ports.SearchRequest{Root: ""})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = NewWalkSearch().Search(t.Context(), ports.SearchRequest{
		Root:       t.TempDir(),
		BaseName:   "a",
		PathSuffix: "b",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestWalkSearchDeadlineMapsToNotFound(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "a/HostTest.java")

	ctx, cancel := context.WithDeadline(t.Context(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := NewWalkSearch().Search(ctx, ports.SearchRequest{
		Root:     root,
		BaseName: "HostTest.java",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
