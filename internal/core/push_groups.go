package core

import (
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"atest-finder/internal/ports"
	"atest-finder/internal/types"
)

const (
	manifestSuffix = ".push"
	pushDelimiter  = "->"
)

// PushGroups expands named push-group manifests into concrete build
// artifact targets. A manifest line either references another manifest
// (ends in .push) or maps a relative artifact path to its device
// destination.
type PushGroups struct {
	Manifests ports.PushManifestPort
}

func NewPushGroups(manifests ports.PushManifestPort) PushGroups {
	return PushGroups{Manifests: manifests}
}

// Expand reads the named manifest and recursively expands nested
// manifests. A manifest already expanded during this walk is skipped,
// which both deduplicates diamond-shaped graphs and guarantees
// termination on cyclic ones. Pass visited as nil at the top level.
func (p PushGroups) Expand(name string, outDirRel string, visited map[string]struct{}) (types.TargetSet, error) {
	if visited == nil {
		visited = map[string]struct{}{}
	}
	targets := types.NewTargetSet()
	if _, seen := visited[name]; seen {
		log.Warn().Str("manifest", name).Msg("push manifest already expanded, skipping")
		return targets, nil
	}
	visited[name] = struct{}{}

	lines, err := p.Manifests.Read(name)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, manifestSuffix) {
			nested, err := p.Expand(line, outDirRel, visited)
			if err != nil {
				return nil, err
			}
			targets.Union(nested)
			continue
		}
		artifact := line
		if idx := strings.Index(line, pushDelimiter); idx >= 0 {
			artifact = strings.TrimSpace(line[:idx])
		}
		targets.Add(path.Join(outDirRel, artifact))
	}
	return targets, nil
}
