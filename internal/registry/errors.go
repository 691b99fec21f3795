package registry

import (
	"errors"
	"fmt"
)

// NotFoundError reports that the registry returned zero extensions for a
// requested id. Transport failures (non-200 status, network error, malformed
// JSON) are propagated from the Transport unchanged and are never of this type.
type NotFoundError struct {
	ExtensionID string
	URL         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("extension %s not found at %s", e.ExtensionID, e.URL)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
