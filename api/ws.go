package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"shadowme/css"
	"shadowme/preset"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsOut is one frame to the browser. Only "css" frames carry an output.
type wsOut struct {
	Type string `json:"type"`
	*css.Output
	Error string `json:"error,omitempty"`
}

// wsIn is an intent sent by the browser.
type wsIn struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value any    `json:"value,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// gorilla/websocket allows one concurrent writer.
	var writeMu sync.Mutex
	writeMsg := func(msg wsOut) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}

	outChan := make(chan css.Output, 16)
	kick := s.SetClient(outChan)
	defer s.ClearClient(outChan)

	// Replay the current state so the client can render immediately.
	last := s.LastOutput()
	if err := writeMsg(wsOut{Type: "css", Output: &last}); err != nil {
		log.Printf("WS replay error: %v", err)
		return
	}

	// Goroutine: pump emitted outputs to the client.
	// Exits when ClearClient closes outChan.
	go func() {
		for out := range outChan {
			out := out
			if err := writeMsg(wsOut{Type: "css", Output: &out}); err != nil {
				return
			}
		}
	}()

	// Goroutine: watch for session end or displacement and close the connection
	// so ReadJSON below unblocks immediately.
	connDone := make(chan struct{})
	go func() {
		select {
		case <-s.Done():
			writeMsg(wsOut{Type: "closed"}) //nolint:errcheck
			conn.Close()
		case <-kick:
			conn.Close()
		case <-connDone:
		}
	}()
	defer close(connDone)

	for {
		var msg wsIn
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "update":
			if err := s.Update(msg.Field, msg.Value); err != nil {
				writeMsg(wsOut{Type: "error", Error: err.Error()}) //nolint:errcheck
			}
		case "reset":
			s.Reset()
		case "preset":
			p, err := preset.ByName(msg.Name)
			if err != nil {
				writeMsg(wsOut{Type: "error", Error: err.Error()}) //nolint:errcheck
				continue
			}
			s.ApplyPreset(p)
		}
	}
}
