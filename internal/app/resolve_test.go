package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atest-finder/internal/adapters"
	"atest-finder/internal/ports"
)

type firstSelection struct{}

func (firstSelection) Choose([]string) (int, error) { return 0, nil }

type fakeModules map[string]bool

func (m fakeModules) IsModule(name string) bool { return m[name] }

// buildRepo lays out a minimal source tree: one module with a test
// class and config.
func buildRepo(t *testing.T, config string) string {
	t.Helper()
	root := t.TempDir()
	moduleDir := filepath.Join(root, "platform", "tests")
	require.NoError(t, os.MkdirAll(filepath.Join(moduleDir, "src", "com", "example"), 0755))
	java := "package com.example;\n\npublic class HostTest {}\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(moduleDir, "src", "com", "example", "HostTest.java"), []byte(java), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(moduleDir, "AndroidTest.xml"), []byte(config), 0644))
	return root
}

func newTestService(root string, modules fakeModules) Service {
	return Service{
		Root:      root,
		Search:    adapters.NewWalkSearch(),
		Selection: firstSelection{},
		Modules:   modules,
		Configs:   adapters.NewConfigXMLAdapter(),
		Manifests: adapters.NewPushManifestDir(filepath.Join(root, "push_groups")),
	}
}

func TestResolveClassReference(t *testing.T) {
	config := `<configuration>
  <option name="test-file-name" value="ExampleCases.apk" />
</configuration>`
	root := buildRepo(t, config)
	service := newTestService(root, fakeModules{"ExampleCases": true})

	result, err := service.Resolve(t.Context(), ResolveRequest{
		References: []string{"HostTest#testOne,testTwo"},
	})
	require.NoError(t, err)
	require.Len(t, result.Resolutions, 1)

	res := result.Resolutions[0]
	assert.Empty(t, res.Err)
	assert.Equal(t, "HostTest", res.Locator)
	assert.Equal(t, []string{"testOne", "testTwo"}, res.Methods)
	assert.Equal(t, "com.example.HostTest", res.QualifiedName)
	assert.Equal(t, filepath.Join("platform", "tests"), res.Artifact.ModuleDir)
	if diff := cmp.Diff([]string{"ExampleCases"}, res.Targets); diff != "" {
		t.Fatalf("unexpected targets (-want +got):\n%s", diff)
	}
}

func TestResolveQualifiedClassReference(t *testing.T) {
	root := buildRepo(t, "<configuration/>")
	service := newTestService(root, fakeModules{})

	result, err := service.Resolve(t.Context(), ResolveRequest{
		References: []string{"com.example.HostTest"},
	})
	require.NoError(t, err)
	res := result.Resolutions[0]
	assert.Empty(t, res.Err)
	assert.Equal(t, "com.example.HostTest", res.QualifiedName)
}

func TestResolveContinuesPastFailedReference(t *testing.T) {
	root := buildRepo(t, "<configuration/>")
	service := newTestService(root, fakeModules{})

	result, err := service.Resolve(t.Context(), ResolveRequest{
		References: []string{"a#b#c", "HostTest"},
	})
	require.NoError(t, err)
	require.Len(t, result.Resolutions, 2)
	assert.NotEmpty(t, result.Resolutions[0].Err)
	assert.Empty(t, result.Resolutions[1].Err)
	assert.Equal(t, 1, result.Failed())
}

func TestResolveAllFailed(t *testing.T) {
	root := buildRepo(t, "<configuration/>")
	service := newTestService(root, fakeModules{})

	result, err := service.Resolve(t.Context(), ResolveRequest{
		References: []string{"NoSuchTest"},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	require.Len(t, result.Resolutions, 1)
	assert.NotEmpty(t, result.Resolutions[0].Err)
}

func TestResolveVTSConfigExpandsPushGroups(t *testing.T) {
	config := `<configuration>
  <option name="test-module-name" value="VtsExample" />
  <option name="push-group" value="Example.push" />
  <option name="push" value="DATA/bin/probe->/data/bin/probe" />
  <option name="append-bitness" value="true" />
</configuration>`
	root := buildRepo(t, config)
	pushDir := filepath.Join(root, "push_groups")
	require.NoError(t, os.MkdirAll(pushDir, 0755))
	manifest := "DATA/lib/libexample.so->/data/lib/libexample.so\n"
	require.NoError(t, os.WriteFile(filepath.Join(pushDir, "Example.push"), []byte(manifest), 0644))

	service := newTestService(root, fakeModules{"VtsExample": true})
	result, err := service.Resolve(t.Context(), ResolveRequest{
		References: []string{"HostTest"},
		OutDir:     "out/target",
	})
	require.NoError(t, err)

	want := []string{
		"VtsExample",
		"out/target/DATA/bin/probe32",
		"out/target/DATA/bin/probe64",
		"out/target/DATA/lib/libexample.so",
	}
	if diff := cmp.Diff(want, result.Resolutions[0].Targets); diff != "" {
		t.Fatalf("unexpected targets (-want +got):\n%s", diff)
	}
}

func TestResolveEmptyConfigYieldsNoTargets(t *testing.T) {
	root := buildRepo(t, "<configuration/>")
	service := newTestService(root, fakeModules{})

	result, err := service.Resolve(t.Context(), ResolveRequest{References: []string{"HostTest"}})
	require.NoError(t, err)
	assert.Empty(t, result.Resolutions[0].Err)
	assert.Empty(t, result.Resolutions[0].Targets)
}

func TestResolveValidatesRequest(t *testing.T) {
	service := Service{Root: ""}
	_, err := service.Resolve(context.Background(), ResolveRequest{References: []string{"X"}})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	service = newTestService(t.TempDir(), fakeModules{})
	_, err = service.Resolve(context.Background(), ResolveRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestCheckModules(t *testing.T) {
	service := newTestService(t.TempDir(), fakeModules{"known": true})
	result, err := service.CheckModules(ModulesRequest{Names: []string{"known", "unknown"}})
	require.NoError(t, err)
	want := []ModuleCheck{
		{Name: "known", IsModule: true},
		{Name: "unknown", IsModule: false},
	}
	if diff := cmp.Diff(want, result.Checks); diff != "" {
		t.Fatalf("unexpected checks (-want +got):\n%s", diff)
	}
}

var _ ports.SelectionPort = firstSelection{}
