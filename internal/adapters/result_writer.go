package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"atest-finder/internal/ports"
	"atest-finder/internal/types"
)

// ResultWriter renders reference resolutions as text, json, or yaml.
type ResultWriter struct {
	Out io.Writer
}

func NewResultWriter(out io.Writer) ResultWriter {
	return ResultWriter{Out: out}
}

func (w ResultWriter) Write(resolutions []types.ReferenceResolution, format string) error {
	switch format {
	case "", "text":
		return w.writeText(resolutions)
	case "json":
		encoder := json.NewEncoder(w.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resolutions)
	case "yaml":
		return yaml.NewEncoder(w.Out).Encode(resolutions)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("unknown output format: " + format)
}

func (w ResultWriter) writeText(resolutions []types.ReferenceResolution) error {
	for _, res := range resolutions {
		if res.Err != "" {
			fmt.Fprintf(w.Out, "%s: FAILED: %s\n", res.Locator, res.Err)
			continue
		}
		fmt.Fprintf(w.Out, "%s (%s)\n", res.Locator, res.Kind)
		if res.QualifiedName != "" {
			fmt.Fprintf(w.Out, "  class: %s\n", res.QualifiedName)
		}
		if len(res.Methods) > 0 {
			fmt.Fprintf(w.Out, "  methods: %s\n", strings.Join(res.Methods, ", "))
		}
		fmt.Fprintf(w.Out, "  file: %s\n", res.Artifact.AbsolutePath)
		fmt.Fprintf(w.Out, "  module dir: %s\n", res.Artifact.ModuleDir)
		fmt.Fprintf(w.Out, "  build targets: %s\n", strings.Join(res.Targets, " "))
	}
	return nil
}

var _ ports.OutputPort = ResultWriter{}
