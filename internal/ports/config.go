package ports

import "atest-finder/internal/types"

// TestConfigPort loads and parses test configuration documents.
type TestConfigPort interface {
	Load(path string) (types.ConfigDocument, error)
}
