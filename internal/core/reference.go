package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"atest-finder/internal/shared"
	"atest-finder/internal/types"
)

const (
	methodDelimiter    = "#"
	methodSeparator    = ","
	qualifiedSeparator = "."
)

// SplitMethods splits a raw reference token into its locator and method
// set. A token carries at most one method group: "Class#m1,m2" is fine,
// "Class#m1#m2" is not; users pass multiple tokens for multiple classes.
func SplitMethods(input string) (string, types.MethodSet, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty test reference")
	}
	parts := strings.Split(input, methodDelimiter)
	switch len(parts) {
	case 1:
		return shared.NormalizeClassName(parts[0]), types.NewMethodSet(), nil
	case 2:
		return shared.NormalizeClassName(parts[0]), types.NewMethodSet(strings.Split(parts[1], methodSeparator)...), nil
	}
	return "", nil, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("too many methods specified in one reference; use one class#method group per argument")
}

// ClassifyLocator picks the reference kind from the locator's shape: a
// dotted name is a fully qualified class, anything else a bare class.
func ClassifyLocator(locator string) types.ReferenceKind {
	if strings.Contains(locator, qualifiedSeparator) {
		return types.ReferenceKindQualifiedClass
	}
	return types.ReferenceKindClass
}
