package ports

import "atest-finder/internal/types"

// OutputPort renders reference resolutions for the user.
type OutputPort interface {
	Write(resolutions []types.ReferenceResolution, format string) error
}
