package preset

import (
	"errors"

	"shadowme/shadow"
)

// Preset is a named built-in shadow configuration.
type Preset struct {
	Name       string            `json:"name"`
	Properties shadow.Properties `json:"properties"`
}

var ErrNotFound = errors.New("preset not found")
