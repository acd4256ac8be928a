// Package validators checks inspection headers, category records and
// defect overrides before services persist them.
//
// Validators take an optional list of field names to restrict the check to
// those fields; with no names every field is checked.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input, optionally restricted to
	// the named fields.
	Validate(context.Context, any, ...string) error
}
