// Package attributes validates runtime values against declarative schemas and
// derives defaults, merged values and empty skeletons from the same schemas.
//
// A schema ("spec") is built from the ready-made attributes of the Required
// and Optional catalogs, composed with plain Go values: maps become schemas,
// slices become tuples and anything else must match exactly.
//
// Basic Usage:
//
//	var user = attributes.Required.Schema(map[string]any{
//		"id":    attributes.Required.UUID,
//		"email": attributes.Required.Email,
//		"name":  attributes.Optional.NonemptyString,
//		"role":  attributes.Required.OneOf("admin", "member"),
//		"tags":  attributes.Optional.Array.OfType(attributes.Required.String),
//	})
//
//	if _, err := attributes.Validate(user, payload); err != nil {
//		fields := attributes.FieldErrorsOf(err)
//		// fields.Get("email") == "expected email field, got ..."
//	}
//
//	withDefaults, err := attributes.MergeDefault(user, payload, false)
//
// Attributes are immutable. MakeOptional, DefaultsTo, As, With and OfType
// return copies:
//
//	retries := attributes.Optional.Integer.DefaultsTo(attributes.Literal(3)).As("tunable")
//
// Absent values are represented by Undefined and nil. Required attributes
// reject both; optional ones accept both. When merging, Undefined is always
// replaced by the default, while nil is replaced only for required
// attributes or when nullIsUndefined is set.
//
// Validation failures are returned as *ValidationError. Structural attributes
// report every failing child at once; use Failures or FieldErrorsOf to get a
// flat list of paths.
//
// Checker wraps the same operations with structured logging via log/slog and
// can be configured from the environment through the config package:
//
//	settings := config.MustLoadSettings()
//	checker := attributes.NewChecker(attributes.WithSettings(settings))
//
// Decode merges, validates and binds a value into a Go struct in one step.
package attributes
