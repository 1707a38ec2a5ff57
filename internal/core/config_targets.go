package core

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"atest-finder/internal/ports"
	"atest-finder/internal/types"
)

// Helps find apk files listed in a test config file. Matches
// "filename.apk" but not "bar/filename.apk".
var apkRe = regexp.MustCompile(`(?i)^[^/]+\.apk$`)

const (
	apkSuffix = ".apk"
	// Setup script for device perf tests.
	perfSetupScript = "perf-setup.sh"
	// Tests whose harness classes live under the compatibility suite
	// package need the suite harness jar built as well.
	compatibilityPackagePrefix = "com.android.compatibility"
	compatibilityHarnessJar    = "cts-tradefed"
)

// ConfigTargets mines a test configuration document for build-target
// signals: bare apk filenames confirmed against the module oracle, the
// perf setup script, and compatibility-suite harness classes. Bad
// signals are logged and skipped; extraction never fails.
func ConfigTargets(doc types.ConfigDocument, modules ports.ModuleInfoPort) types.TargetSet {
	targets := types.NewTargetSet()
	for _, opt := range doc.Options {
		if !opt.HasValue {
			continue
		}
		value := strings.TrimSpace(opt.Value)
		if apkRe.MatchString(value) {
			candidate := value[:len(value)-len(apkSuffix)]
			if modules.IsModule(candidate) {
				targets.Add(candidate)
				continue
			}
			log.Warn().
				Str("target", candidate).
				Msg("build target not present in module info, skipping")
			continue
		}
		if strings.Contains(value, perfSetupScript) {
			targets.Add(perfSetupScript)
		}
	}
	for _, element := range doc.Elements {
		if strings.HasPrefix(strings.TrimSpace(element.Class), compatibilityPackagePrefix) {
			targets.Add(compatibilityHarnessJar)
		}
	}
	log.Debug().Strs("targets", targets.Sorted()).Msg("targets found in config file")
	return targets
}
