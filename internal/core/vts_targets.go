package core

import (
	"path"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"atest-finder/internal/ports"
	"atest-finder/internal/types"
)

// Option names of the device-test configuration dialect.
const (
	optTestModuleName   = "test-module-name"
	optBinaryTestSource = "binary-test-source"
	optPushGroup        = "push-group"
	optPush             = "push"
	optAppendBitness    = "append-bitness"

	archDelimiter = "::"
)

var vtsOptionNames = map[string]struct{}{
	optTestModuleName:   {},
	optBinaryTestSource: {},
	optPushGroup:        {},
	optPush:             {},
}

// HasVTSOptions reports whether the document carries any device-test
// dialect option, which is what flags a config for VTS extraction.
func HasVTSOptions(doc types.ConfigDocument) bool {
	for _, opt := range doc.Options {
		if _, ok := vtsOptionNames[opt.Name]; ok {
			return true
		}
	}
	return false
}

// VTSExtractor mines device-test configuration options for build
// targets, expanding push-group manifests through PushGroups.
type VTSExtractor struct {
	Modules ports.ModuleInfoPort
	Groups  PushGroups
}

func NewVTSExtractor(modules ports.ModuleInfoPort, groups PushGroups) VTSExtractor {
	return VTSExtractor{Modules: modules, Groups: groups}
}

// Extract walks the document's options. Unverifiable module names are
// skipped with a diagnostic; a processed option missing its value
// attribute or an unreadable push manifest fails the extraction.
func (e VTSExtractor) Extract(doc types.ConfigDocument, outDirRel string) (types.TargetSet, error) {
	targets := types.NewTargetSet()
	appendBitness := hasAppendBitness(doc)
	visited := map[string]struct{}{}

	for _, opt := range doc.Options {
		if _, ok := vtsOptionNames[opt.Name]; !ok {
			continue
		}
		if !opt.HasValue {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("option " + opt.Name + " has no value attribute")
		}
		value := strings.TrimSpace(opt.Value)
		switch opt.Name {
		case optTestModuleName:
			if e.Modules.IsModule(value) {
				targets.Add(value)
				continue
			}
			log.Warn().
				Str("target", value).
				Msg("vts test module not present in module info, skipping")
		case optBinaryTestSource:
			targets.Add(normalizeBinaryTestSource(value, outDirRel))
		case optPushGroup:
			expanded, err := e.Groups.Expand(value, outDirRel, visited)
			if err != nil {
				return nil, err
			}
			targets.Union(expanded)
		case optPush:
			artifact := value
			if idx := strings.Index(value, pushDelimiter); idx >= 0 {
				artifact = strings.TrimSpace(value[:idx])
			}
			if appendBitness {
				targets.Add(path.Join(outDirRel, artifact+"32"))
				targets.Add(path.Join(outDirRel, artifact+"64"))
				continue
			}
			targets.Add(path.Join(outDirRel, artifact))
		}
	}
	return targets, nil
}

// normalizeBinaryTestSource reduces a binary-test-source value to a
// build artifact path. "arch::rel" and "rel->device" forms are rooted
// in the out dir; a bare value is a target name used verbatim.
func normalizeBinaryTestSource(value string, outDirRel string) string {
	if idx := strings.Index(value, archDelimiter); idx >= 0 {
		return path.Join(outDirRel, strings.TrimSpace(value[idx+len(archDelimiter):]))
	}
	if idx := strings.Index(value, pushDelimiter); idx >= 0 {
		return path.Join(outDirRel, strings.TrimSpace(value[:idx]))
	}
	return value
}

func hasAppendBitness(doc types.ConfigDocument) bool {
	for _, value := range doc.OptionValues(optAppendBitness) {
		if strings.TrimSpace(value) == "true" {
			return true
		}
	}
	return false
}
