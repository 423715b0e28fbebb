package images

import "github.com/pkg/errors"

// Precondition failures. Both indicate a caller bug rather than a runtime
// condition; callers are expected to stop rather than retry.
var (
	// ErrInvalidDimensions is returned when a width or height is not positive,
	// or a buffer does not match its declared size.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrDimensionMismatch is returned when planes that must share a size do not.
	ErrDimensionMismatch = errors.New("plane dimensions do not match")
)
