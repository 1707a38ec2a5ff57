package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"atest-finder/internal/core"
	"atest-finder/internal/types"
)

// Resolve turns each reference token into a resolved artifact and its
// build-target set. Tokens resolve independently: one malformed or
// unresolvable token never stops the others. The call errors only when
// the request is unusable or every token failed.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	if strings.TrimSpace(s.Root) == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository root is required")
	}
	if len(req.References) == 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one test reference is required")
	}

	locator := core.NewLocator(s.Search, s.Selection, s.Root, moduleConfigFileName)
	if req.SearchTimeout > 0 {
		locator.Timeout = req.SearchTimeout
	}
	searchRoot := req.SearchRoot
	if searchRoot == "" {
		searchRoot = s.Root
	}

	result := ResolveResult{}
	for _, token := range req.References {
		resolution := s.resolveOne(ctx, locator, token, searchRoot, req.OutDir)
		if resolution.Err != "" {
			log.Warn().Str("reference", token).Str("error", resolution.Err).
				Msg("reference did not resolve")
		}
		result.Resolutions = append(result.Resolutions, resolution)
	}
	if result.Failed() == len(result.Resolutions) {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no test references resolved")
	}
	return result, nil
}

func (s Service) resolveOne(ctx context.Context, locator core.Locator, token string, searchRoot string, outDir string) types.ReferenceResolution {
	resolution := types.ReferenceResolution{Locator: token}

	name, methods, err := core.SplitMethods(token)
	if err != nil {
		resolution.Err = err.Error()
		return resolution
	}
	resolution.Locator = name
	resolution.Methods = methods.Sorted()
	resolution.Kind = core.ClassifyLocator(name)

	path, err := locator.Locate(ctx, name, resolution.Kind, searchRoot)
	if err != nil {
		resolution.Err = err.Error()
		return resolution
	}
	qualified, err := locator.ResolveQualifiedName(path)
	if err != nil {
		resolution.Err = err.Error()
		return resolution
	}
	resolution.QualifiedName = qualified

	moduleDir, err := locator.FindModuleRoot(filepath.Dir(path))
	if err != nil {
		resolution.Err = err.Error()
		return resolution
	}
	resolution.Artifact = types.ResolvedArtifact{
		AbsolutePath: path,
		ModuleDir:    moduleDir,
	}

	targets, err := s.gatherTargets(moduleDir, outDir)
	if err != nil {
		resolution.Err = err.Error()
		return resolution
	}
	resolution.Targets = targets.Sorted()
	return resolution
}

// gatherTargets mines the module's test configuration. The config is
// an opportunistic signal source: a module without one still resolves,
// it just contributes no extra build targets.
func (s Service) gatherTargets(moduleDir string, outDir string) (types.TargetSet, error) {
	targets := types.NewTargetSet()
	configPath := filepath.Join(s.Root, moduleDir, moduleConfigFileName)
	doc, err := s.Configs.Load(configPath)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			log.Warn().Str("path", configPath).Msg("module has no test config, skipping target extraction")
			return targets, nil
		}
		return nil, err
	}
	targets.Union(core.ConfigTargets(doc, s.Modules))
	if core.HasVTSOptions(doc) {
		extractor := core.NewVTSExtractor(s.Modules, core.NewPushGroups(s.Manifests))
		vtsTargets, err := extractor.Extract(doc, outDir)
		if err != nil {
			return nil, err
		}
		targets.Union(vtsTargets)
	}
	return targets, nil
}

// CheckModules answers module-existence probes against the metadata
// oracle.
func (s Service) CheckModules(req ModulesRequest) (ModulesResult, error) {
	if len(req.Names) == 0 {
		return ModulesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one module name is required")
	}
	result := ModulesResult{}
	for _, name := range req.Names {
		result.Checks = append(result.Checks, ModuleCheck{
			Name:     name,
			IsModule: s.Modules.IsModule(name),
		})
	}
	return result, nil
}
