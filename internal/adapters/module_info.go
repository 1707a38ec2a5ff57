package adapters

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"atest-finder/internal/ports"
)

// ModuleInfoAdapter answers module-existence queries from the build
// system's module-info database. The database is loaded lazily on
// first use and kept for the whole invocation. A missing or unreadable
// database degrades to "nothing is a module" with a single warning:
// the oracle is advisory and must never fail a resolution by itself.
type ModuleInfoAdapter struct {
	Path string

	once    sync.Once
	modules map[string]struct{}
}

func NewModuleInfoAdapter(path string) *ModuleInfoAdapter {
	return &ModuleInfoAdapter{Path: path}
}

func (a *ModuleInfoAdapter) IsModule(name string) bool {
	a.once.Do(a.load)
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	_, ok := a.modules[name]
	return ok
}

func (a *ModuleInfoAdapter) load() {
	content, err := os.ReadFile(a.Path)
	if err != nil {
		log.Warn().Str("path", a.Path).Err(err).
			Msg("module info not available, all module checks will fail")
		return
	}
	// The database is a map keyed by module name; the per-module
	// payload is irrelevant here.
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(content, &entries); err != nil {
		log.Warn().Str("path", a.Path).Err(err).
			Msg("module info unreadable, all module checks will fail")
		return
	}
	a.modules = make(map[string]struct{}, len(entries))
	for name := range entries {
		a.modules[name] = struct{}{}
	}
	log.Debug().Int("modules", len(a.modules)).Msg("module info loaded")
}

var _ ports.ModuleInfoPort = (*ModuleInfoAdapter)(nil)
