package engine

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FrameSink is a Renderer that queues frames on a channel for the TUI.
// Frames older than the newest generation seen are dropped.
type FrameSink struct {
	id       SessionID
	frames   chan snake.Frame
	done     chan struct{}
	doneOnce sync.Once

	mu      sync.Mutex
	lastGen uint64
}

// NewFrameSink creates a sink. bufferSize controls how many frames can be
// queued before the oldest is dropped.
func NewFrameSink(id SessionID, bufferSize int) *FrameSink {
	if bufferSize < 1 {
		bufferSize = 16
	}
	return &FrameSink{
		id:     id,
		frames: make(chan snake.Frame, bufferSize),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *FrameSink) ID() SessionID {
	return s.id
}

// Render queues f without blocking. If the buffer is full the oldest frame
// is dropped to make room.
func (s *FrameSink) Render(f snake.Frame) {
	select {
	case <-s.done:
		return
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f.Generation < s.lastGen {
		return
	}
	s.lastGen = f.Generation

	select {
	case s.frames <- f:
	default:
		select {
		case <-s.frames:
		default:
		}
		select {
		case s.frames <- f:
		default:
		}
	}
}

// Frames returns the channel the TUI reads from.
func (s *FrameSink) Frames() <-chan snake.Frame {
	return s.frames
}

// Done returns a channel closed by Close.
func (s *FrameSink) Done() <-chan struct{} {
	return s.done
}

// Close stops the sink from accepting frames.
// Safe to call multiple times.
func (s *FrameSink) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// Session is one connected player and the controller serving them.
type Session struct {
	ID         SessionID
	User       string
	Controller *Controller
	StartedAt  time.Time
}

// SessionRegistry tracks active sessions.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[SessionID]*Session
}

// NewSessionRegistry creates a new session registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[SessionID]*Session),
	}
}

// Register adds a session to the registry.
func (r *SessionRegistry) Register(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// Unregister removes a session and closes its controller.
func (r *SessionRegistry) Unregister(id SessionID) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok && s.Controller != nil {
		s.Controller.Close()
	}
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id SessionID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll closes every controller and empties the registry.
func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[SessionID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		if s.Controller != nil {
			s.Controller.Close()
		}
	}
}
