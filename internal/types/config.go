package types

// ConfigOption is one <option> element of a test configuration document.
// HasValue records whether the value attribute was present at all, so
// extractors can tell a missing attribute from an empty one.
type ConfigOption struct {
	Name     string
	Value    string
	HasValue bool
}

// ConfigElement is any element of the document carrying a class
// attribute.
type ConfigElement struct {
	Name  string
	Class string
}

// ConfigDocument is a parsed test configuration document, flattened to
// the two shapes the extractors care about: option elements at any
// depth, and elements carrying a class attribute. No schema is enforced
// beyond attribute presence.
type ConfigDocument struct {
	Options  []ConfigOption
	Elements []ConfigElement
}

// OptionValues returns the values of every option with the given name
// that carries a value attribute.
func (d ConfigDocument) OptionValues(name string) []string {
	var values []string
	for _, opt := range d.Options {
		if opt.Name == name && opt.HasValue {
			values = append(values, opt.Value)
		}
	}
	return values
}
