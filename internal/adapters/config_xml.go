package adapters

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"atest-finder/internal/ports"
	"atest-finder/internal/types"
)

// ConfigXMLAdapter parses test configuration documents. Parsed
// documents are cached by modification time since the same module
// config is often read for several references in one invocation.
type ConfigXMLAdapter struct {
	mu    sync.Mutex
	cache map[string]configCacheEntry
}

func NewConfigXMLAdapter() *ConfigXMLAdapter {
	return &ConfigXMLAdapter{cache: map[string]configCacheEntry{}}
}

type configCacheEntry struct {
	modTime time.Time
	doc     types.ConfigDocument
}

func (a *ConfigXMLAdapter) Load(path string) (types.ConfigDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.ConfigDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("test config not found").
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.doc, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return types.ConfigDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read test config").
			WithCause(err)
	}
	doc, err := parseConfigDocument(content)
	if err != nil {
		return types.ConfigDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse test config").
			WithCause(err)
	}

	a.mu.Lock()
	a.cache[path] = configCacheEntry{modTime: info.ModTime(), doc: doc}
	a.mu.Unlock()
	return doc, nil
}

// parseConfigDocument flattens the element tree into the option list
// and the class-carrying elements the extractors work on. Unknown tags
// pass through untouched; the dialect has no schema to enforce.
func parseConfigDocument(content []byte) (types.ConfigDocument, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	doc := types.ConfigDocument{}
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		if err != nil {
			return types.ConfigDocument{}, err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local == "option" {
			opt := types.ConfigOption{}
			for _, attr := range start.Attr {
				switch attr.Name.Local {
				case "name":
					opt.Name = attr.Value
				case "value":
					opt.Value = attr.Value
					opt.HasValue = true
				}
			}
			doc.Options = append(doc.Options, opt)
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == "class" {
				doc.Elements = append(doc.Elements, types.ConfigElement{
					Name:  start.Name.Local,
					Class: attr.Value,
				})
			}
		}
	}
}

var _ ports.TestConfigPort = (*ConfigXMLAdapter)(nil)
