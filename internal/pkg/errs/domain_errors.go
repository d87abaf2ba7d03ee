package errs

import "errors"

// Sentinels shared between infra stores and the handlers that switch on
// them. Wizard and catalog errors live in their domain packages.
var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
)
