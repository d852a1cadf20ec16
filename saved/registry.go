// Package saved is the registry of user-named shadow configurations, kept in
// a durable store.
package saved

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"shadowme/css"
	"shadowme/shadow"
	"shadowme/store"
)

// Registry holds saved shadows in creation order.
type Registry struct {
	mu      sync.RWMutex
	st      store.Store
	shadows []Shadow
	newID   func() string
}

// NewRegistry loads the saved shadows from st. A missing or unreadable record
// yields an empty registry; the failure is logged, never returned.
func NewRegistry(st store.Store) *Registry {
	return NewRegistryWithIDFn(st, newID)
}

// NewRegistryWithIDFn is NewRegistry with a custom id generator.
func NewRegistryWithIDFn(st store.Store, fn func() string) *Registry {
	r := &Registry{st: st, newID: fn, shadows: []Shadow{}}
	r.load()
	return r
}

// newID returns a time-ordered UUIDv7, so ids sort in creation order.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (r *Registry) load() {
	data, err := r.st.Read(StoreKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotExist) {
			log.Printf("saved: reading %s: %v (starting empty)", StoreKey, err)
		}
		return
	}
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Printf("saved: decoding %s: %v (starting empty)", StoreKey, err)
		return
	}
	for _, rec := range recs {
		if rec.ID == "" || strings.TrimSpace(rec.Name) == "" {
			log.Printf("saved: skipping record without id or name")
			continue
		}
		r.shadows = append(r.shadows, rec.resolve())
	}
}

func (rec record) resolve() Shadow {
	return Shadow{
		ID:         rec.ID,
		Name:       strings.TrimSpace(rec.Name),
		Properties: rec.Properties.Resolve(),
		CSS:        rec.CSS,
	}
}

// persist writes the current list. Failures are logged; the in-memory state
// stays authoritative. Caller must hold r.mu.
func (r *Registry) persist() {
	data, err := json.Marshal(r.shadows)
	if err != nil {
		log.Printf("saved: encoding: %v", err)
		return
	}
	if err := r.st.Write(StoreKey, data); err != nil {
		log.Printf("saved: writing %s: %v", StoreKey, err)
	}
}

// List returns the saved shadows in creation order.
func (r *Registry) List() []Shadow {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shadow, len(r.shadows))
	copy(out, r.shadows)
	return out
}

// Get returns the saved shadow with id.
func (r *Registry) Get(id string) (Shadow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shadows {
		if s.ID == id {
			return s, true
		}
	}
	return Shadow{}, false
}

// Find resolves ref as an id first, then as a name ignoring case.
func (r *Registry) Find(ref string) (Shadow, bool) {
	if s, ok := r.Get(ref); ok {
		return s, true
	}
	ref = strings.TrimSpace(ref)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shadows {
		if strings.EqualFold(s.Name, ref) {
			return s, true
		}
	}
	return Shadow{}, false
}

// Save appends a new entry named name holding props and css.
// The name is trimmed; it must be non-empty and unique ignoring case.
func (r *Registry) Save(name string, props shadow.Properties, cssText string) (Shadow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, err := r.addLocked(name, props, cssText)
	if err != nil {
		return Shadow{}, err
	}
	r.persist()
	return s, nil
}

func (r *Registry) addLocked(name string, props shadow.Properties, cssText string) (Shadow, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Shadow{}, ErrEmptyName
	}
	for _, s := range r.shadows {
		if strings.EqualFold(strings.TrimSpace(s.Name), name) {
			return Shadow{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	s := Shadow{ID: r.newID(), Name: name, Properties: props, CSS: cssText}
	r.shadows = append(r.shadows, s)
	return s, nil
}

// Delete removes the entry with id. Unknown ids are ignored.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.shadows {
		if s.ID == id {
			r.shadows = append(r.shadows[:i:i], r.shadows[i+1:]...)
			r.persist()
			return
		}
	}
}

// Export encodes every saved shadow as YAML.
func (r *Registry) Export() ([]byte, error) {
	list := r.List()
	out, err := yaml.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encoding saved shadows: %w", err)
	}
	return out, nil
}

// Import adds the shadows in a YAML document produced by Export. Entries with
// empty or already-used names are skipped; ids are always regenerated,
// properties are clamped to the control ranges and a missing css is derived. It returns how many entries were added.
func (r *Registry) Import(data []byte) (int, error) {
	var recs []record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return 0, fmt.Errorf("decoding saved shadows: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	added := 0
	for _, rec := range recs {
		props := rec.Properties.Resolve().Clamp()
		cssText := rec.CSS
		if cssText == "" {
			cssText = css.Shadow(props)
		}
		if _, err := r.addLocked(rec.Name, props, cssText); err != nil {
			continue
		}
		added++
	}
	if added > 0 {
		r.persist()
	}
	return added, nil
}
