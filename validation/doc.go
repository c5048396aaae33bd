// Package validation checks configuration, bridge payloads and the shape
// of provider replies.
//
// Struct tags are checked with the validator library:
//
//	type translateRequest struct {
//	    Text string `json:"text" validate:"required"`
//	}
//	err := validation.Validate(req)
//
// Single values are checked programmatically, collecting every failure:
//
//	v := validation.New()
//	v.OptionalUUID("X-Request-Id", header)
//	err := v.Validate()
//
// Both forms fail with an INVALID_INPUT app error listing each field.
package validation
