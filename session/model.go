package session

import (
	"encoding/json"
	"sync"
	"time"

	"shadowme/css"
	"shadowme/preset"
	"shadowme/shadow"
)

// Session is one editing workspace: a shadow model, the engine deriving its
// CSS, and at most one attached client receiving emitted outputs.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time

	seq uint64

	// mu serializes intents so they are processed one at a time.
	mu         sync.Mutex
	model      *shadow.Model
	engine     *css.Engine
	lastActive time.Time

	// outMu guards the attached client.
	connected bool
	outChan   chan css.Output
	kickChan chan struct{}
	outMu    sync.Mutex
	done     chan struct{}
	doneOnce sync.Once
}

func newSession(id, name string, opts ...css.Option) *Session {
	now := time.Now()
	s := &Session{
		ID:         id,
		Name:       name,
		CreatedAt:  now,
		lastActive: now,
		model:      shadow.NewModel(),
		done:       make(chan struct{}),
	}
	s.engine = css.NewEngine(s.model.Snapshot(), opts...)
	s.model.Observe(s.engine)
	s.engine.Subscribe(s.push)
	return s
}

// push forwards an emitted output to the attached client, dropping it if the
// client is not keeping up.
func (s *Session) push(out css.Output) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	if s.outChan != nil {
		select {
		case s.outChan <- out:
		default:
		}
	}
}

// Update sets one field after clamping it to its control range.
func (s *Session) Update(field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	v, err := shadow.ClampValue(field, value)
	if err != nil {
		return err
	}
	return s.model.Update(field, v)
}

// Reset restores the default shadow.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.model.Reset()
}

// ApplyPreset replaces the configuration with p.
func (s *Session) ApplyPreset(p preset.Preset) {
	s.Apply(p.Properties.Partial())
}

// Apply replaces the configuration with p resolved against the defaults and
// pulled into the control ranges.
func (s *Session) Apply(p shadow.Partial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.model.ApplyConfiguration(p.Resolve().Clamp().Partial())
}

// State derives the output for the latest configuration. It leaves the
// engine alone: a pending burst still resolves, and emits, on its timer.
func (s *Session) State() css.Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	return css.Derive(s.model.Snapshot())
}

// LastOutput returns the most recently emitted output without flushing.
func (s *Session) LastOutput() css.Output {
	return s.engine.Current()
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

// Info is the listing view of a session.
type Info struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	Connected  bool      `json:"connected"`
}

// Info returns a consistent snapshot of the session's metadata.
func (s *Session) Info() Info {
	s.mu.Lock()
	last := s.lastActive
	s.mu.Unlock()

	s.outMu.Lock()
	connected := s.connected
	s.outMu.Unlock()

	return Info{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, LastActive: last, Connected: connected}
}

// MarshalJSON encodes Info.
func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Info())
}

// SetClient registers a channel to receive emitted outputs. If a previous
// client is connected it is kicked: its kick channel is closed so ws.go can
// detect the displacement and close that WebSocket connection. Returns a kick
// channel that will be closed if this client is itself later displaced.
func (s *Session) SetClient(ch chan css.Output) <-chan struct{} {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	if s.kickChan != nil {
		close(s.kickChan)
	}
	kick := make(chan struct{})
	s.kickChan = kick
	s.outChan = ch
	s.connected = true
	return kick
}

// ClearClient is called when a connection ends. It only updates session state
// if ch is still the current owner (guards against a displaced connection
// clearing a newer one). It always closes ch so the pump goroutine exits.
func (s *Session) ClearClient(ch chan css.Output) {
	s.outMu.Lock()
	owned := s.outChan == ch
	if owned {
		s.outChan = nil
		s.connected = false
		s.kickChan = nil
	}
	s.outMu.Unlock()
	close(ch)
}

// Done returns a channel that is closed when the session is killed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) close() {
	s.doneOnce.Do(func() {
		s.engine.Stop()
		close(s.done)
	})
}
