package types

import "sort"

// ReferenceKind classifies how a locator names a test.
type ReferenceKind string

const (
	// ReferenceKindClass is the bare name of a test class, usually matching
	// the file it lives in (HostTest lives in HostTest.java).
	ReferenceKindClass ReferenceKind = "class"
	// ReferenceKindQualifiedClass carries the package in front, like
	// com.android.tradefed.testtype.HostTest.
	ReferenceKindQualifiedClass ReferenceKind = "qualified-class"
	// ReferenceKindIntegration names a test defined purely via harness
	// configuration with no build module of its own. Reserved; never
	// produced by classification.
	ReferenceKindIntegration ReferenceKind = "integration"
)

// MethodSet is an unordered set of test method names.
type MethodSet map[string]struct{}

func NewMethodSet(names ...string) MethodSet {
	set := MethodSet{}
	for _, name := range names {
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}

func (s MethodSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the method names in lexical order.
func (s MethodSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TestReference is one user-supplied test token after parsing. An empty
// method set means the whole class or module.
type TestReference struct {
	Locator string
	Methods MethodSet
}

// ResolvedArtifact is the on-disk artifact a reference resolved to.
// ModuleDir is relative to the configured repository root.
type ResolvedArtifact struct {
	AbsolutePath string `json:"absolute_path,omitempty" yaml:"absolute_path,omitempty"`
	ModuleDir    string `json:"module_dir,omitempty" yaml:"module_dir,omitempty"`
}

// ReferenceResolution is the per-token outcome handed to the build and
// run layers. Err is non-empty when the token failed to resolve; failed
// tokens never abort the rest of the invocation.
type ReferenceResolution struct {
	Locator       string           `json:"locator" yaml:"locator"`
	Methods       []string         `json:"methods,omitempty" yaml:"methods,omitempty"`
	Kind          ReferenceKind    `json:"kind,omitempty" yaml:"kind,omitempty"`
	QualifiedName string           `json:"qualified_name,omitempty" yaml:"qualified_name,omitempty"`
	Artifact      ResolvedArtifact `json:"artifact,omitempty" yaml:"artifact,omitempty"`
	Targets       []string         `json:"targets,omitempty" yaml:"targets,omitempty"`
	Err           string           `json:"error,omitempty" yaml:"error,omitempty"`
}
