package app

import (
	"path/filepath"

	"atest-finder/internal/adapters"
	"atest-finder/internal/ports"
)

// Name of the per-module test configuration document.
const moduleConfigFileName = "AndroidTest.xml"

// Default push-manifest location relative to the repository root.
const defaultPushDirRel = "test/vts/tools/vts-tradefed/res/push_groups"

// Default module-info database location relative to the repository root.
const defaultModuleInfoRel = "out/module-info.json"

type Service struct {
	Root      string
	Search    ports.SearchPort
	Selection ports.SelectionPort
	Modules   ports.ModuleInfoPort
	Configs   ports.TestConfigPort
	Manifests ports.PushManifestPort
}

// ServiceConfig carries the invocation-scoped paths and choices the
// default adapters need. Zero values fall back to conventional
// locations under Root.
type ServiceConfig struct {
	Root           string
	PushDir        string
	ModuleInfoPath string
	UseFind        bool
	Selection      ports.SelectionPort
}

func NewService(cfg ServiceConfig) Service {
	pushDir := cfg.PushDir
	if pushDir == "" {
		pushDir = filepath.Join(cfg.Root, filepath.FromSlash(defaultPushDirRel))
	}
	moduleInfo := cfg.ModuleInfoPath
	if moduleInfo == "" {
		moduleInfo = filepath.Join(cfg.Root, filepath.FromSlash(defaultModuleInfoRel))
	}
	var search ports.SearchPort = adapters.NewWalkSearch()
	if cfg.UseFind {
		search = adapters.NewFindSearch()
	}
	selection := cfg.Selection
	if selection == nil {
		selection = adapters.NewConsolePrompt()
	}
	return Service{
		Root:      cfg.Root,
		Search:    search,
		Selection: selection,
		Modules:   adapters.NewModuleInfoAdapter(moduleInfo),
		Configs:   adapters.NewConfigXMLAdapter(),
		Manifests: adapters.NewPushManifestDir(pushDir),
	}
}
