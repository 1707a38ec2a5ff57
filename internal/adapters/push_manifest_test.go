package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushManifestRead(t *testing.T) {
	dir := t.TempDir()
	content := "DATA/bin/tool->/data/bin/tool\n\nnested.push\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.push"), []byte(content), 0644))

	lines, err := NewPushManifestDir(dir).Read("top.push")
	require.NoError(t, err)
	want := []string{"DATA/bin/tool->/data/bin/tool", "", "nested.push", ""}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestPushManifestReadMissing(t *testing.T) {
	_, err := NewPushManifestDir(t.TempDir()).Read("absent.push")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestPushManifestRejectsPathTraversal(t *testing.T) {
	_, err := NewPushManifestDir(t.TempDir()).Read("../escape.push")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
