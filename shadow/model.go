package shadow

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownField = errors.New("unknown shadow field")
	ErrInvalidValue = errors.New("invalid value for shadow field")
)

// Observer is notified with the new snapshot after every Model change.
type Observer interface {
	Observe(Properties)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Properties)

func (f ObserverFunc) Observe(p Properties) { f(p) }

// Model owns the current shadow configuration. It is not safe for concurrent
// use; callers serialize intents (see session.Session).
type Model struct {
	current   Properties
	observers []Observer
}

// NewModel returns a Model holding Defaults.
func NewModel() *Model {
	return &Model{current: Defaults()}
}

// Observe registers o. Observers run synchronously in registration order.
func (m *Model) Observe(o Observer) {
	m.observers = append(m.observers, o)
}

// Snapshot returns a copy of the current configuration.
func (m *Model) Snapshot() Properties {
	return m.current
}

// Update replaces the single field named by field. Integer fields accept any
// Go number (floats are truncated); range checks are left to the caller.
func (m *Model) Update(field string, value any) error {
	next := m.current
	switch field {
	case FieldOffsetX, FieldOffsetY, FieldBlurRadius, FieldSpreadRadius:
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		switch field {
		case FieldOffsetX:
			next.OffsetX = n
		case FieldOffsetY:
			next.OffsetY = n
		case FieldBlurRadius:
			next.BlurRadius = n
		case FieldSpreadRadius:
			next.SpreadRadius = n
		}
	case FieldAlpha:
		f, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		next.Alpha = f
	case FieldColor:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: %w: %T", field, ErrInvalidValue, value)
		}
		next.Color = s
	case FieldInset:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: %w: %T", field, ErrInvalidValue, value)
		}
		next.Inset = b
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	m.set(next)
	return nil
}

// Reset restores Defaults.
func (m *Model) Reset() {
	m.set(Defaults())
}

// ApplyConfiguration replaces the whole configuration with p resolved against
// Defaults. Fields absent from p take their default, not their previous value.
func (m *Model) ApplyConfiguration(p Partial) {
	m.set(p.Resolve())
}

func (m *Model) set(p Properties) {
	m.current = p
	for _, o := range m.observers {
		o.Observe(p)
	}
}

func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidValue, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, f)
	}
	return f, nil
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: %v out of range", ErrInvalidValue, f)
	}
	return int(f), nil
}
