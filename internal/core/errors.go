package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
)

// NewSchemaLoadError reports a structurally malformed schema graph. The
// load always fails outright; no partial index is ever returned.
func NewSchemaLoadError(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("schema load failed: " + msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// NewUnknownElementError reports a name or alias that resolves to no
// element in the index.
func NewUnknownElementError(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("unknown element: " + name)
}

// IsUnknownElement reports whether err denotes an unresolvable name.
func IsUnknownElement(err error) bool {
	return err != nil && errbuilder.CodeOf(err) == errbuilder.CodeNotFound
}
