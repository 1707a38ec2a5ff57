package e2e

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atest-finder/internal/types"
	"atest-finder/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	repo := testutil.RepoRoot(t)
	tree := t.TempDir()
	testutil.WriteTree(t, tree, map[string]string{
		"packages/sample/AndroidTest.xml": `<configuration>
  <option name="test-file-name" value="SampleCases.apk" />
</configuration>`,
		"packages/sample/src/com/sample/SampleTest.java": "package com.sample;\n\npublic class SampleTest {}\n",
		"out/module-info.json":                           `{"SampleCases": {"class": ["APPS"]}}`,
	})

	cmd := exec.Command("go", "run", "./cmd/atest-finder", "resolve",
		"--root", tree,
		"--format", "json",
		"SampleTest#testOne",
	)
	cmd.Dir = repo
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.Output()
	require.NoError(t, err, string(out))

	var resolutions []types.ReferenceResolution
	require.NoError(t, json.Unmarshal(out, &resolutions))
	require.Len(t, resolutions, 1)
	assert.Equal(t, "com.sample.SampleTest", resolutions[0].QualifiedName)
	assert.Equal(t, []string{"SampleCases"}, resolutions[0].Targets)
}

func TestResolveCommandE2EUnknownReference(t *testing.T) {
	repo := testutil.RepoRoot(t)
	tree := t.TempDir()
	testutil.WriteTree(t, tree, map[string]string{
		"packages/sample/AndroidTest.xml": "<configuration/>",
	})

	// go run does not propagate the child's exit code (it always exits 1),
	// so build the binary and run it directly to observe the real code.
	bin := filepath.Join(t.TempDir(), "atest-finder")
	build := exec.Command("go", "build", "-o", bin, "./cmd/atest-finder")
	build.Dir = repo
	build.Env = append(os.Environ(), "GO111MODULE=on")
	buildOut, buildErr := build.CombinedOutput()
	require.NoError(t, buildErr, string(buildOut))

	cmd := exec.Command(bin, "resolve",
		"--root", tree,
		"NoSuchTest",
	)
	cmd.Dir = repo
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	err := cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.ExitCode())
}
