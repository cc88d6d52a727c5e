// Package validation carries the sentinel for business-rule input rejections
// raised below the HTTP layer.
package validation

import "errors"

// ErrInvalid marks a well-formed request that fails a business validation
// rule. Wrap it with the specific reason; handlers surface both.
var ErrInvalid = errors.New("invalid input")
