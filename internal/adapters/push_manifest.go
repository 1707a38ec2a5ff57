package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"atest-finder/internal/ports"
)

// PushManifestDir reads push-group manifests from one directory.
type PushManifestDir struct {
	Dir string
}

func NewPushManifestDir(dir string) PushManifestDir {
	return PushManifestDir{Dir: dir}
}

func (d PushManifestDir) Read(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid push manifest name: " + name)
	}
	content, err := os.ReadFile(filepath.Join(d.Dir, name))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("push manifest not found: " + name).
			WithCause(err)
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	return lines, nil
}

var _ ports.PushManifestPort = PushManifestDir{}
