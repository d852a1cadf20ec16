package saved

import (
	"errors"

	"shadowme/shadow"
)

// StoreKey is the record the registry persists under.
const StoreKey = "shadowme_saved_shadows"

// Shadow is a user-saved configuration. Properties is an independent copy and
// CSS is the declaration as it was when saved.
type Shadow struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Properties shadow.Properties `json:"properties" yaml:"properties"`
	CSS        string            `json:"css" yaml:"css"`
}

// record is the persisted form; properties may predate newer fields.
type record struct {
	ID         string         `json:"id" yaml:"id,omitempty"`
	Name       string         `json:"name" yaml:"name"`
	Properties shadow.Partial `json:"properties" yaml:"properties"`
	CSS        string         `json:"css" yaml:"css,omitempty"`
}

var (
	ErrEmptyName     = errors.New("shadow name is empty")
	ErrDuplicateName = errors.New("a saved shadow with this name already exists")
	ErrNotFound      = errors.New("saved shadow not found")
)
