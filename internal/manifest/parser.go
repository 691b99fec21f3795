package manifest

import (
	"encoding/json"
	"fmt"
)

// Parse unmarshals raw package.json bytes into a Manifest. It does not
// validate; callers that need field-level checks use Validate.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing extension manifest: %w", err)
	}
	return &m, nil
}
