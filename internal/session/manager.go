// Package session hosts multiple concurrent games. The core engine is
// single-threaded by design; when a process runs several sessions at
// once, each session's engine, board, and state form one unit that
// must be exclusively owned by one execution context at a time. The
// manager enforces that ownership with a per-session lock.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/engine"
)

// ErrNotFound indicates a session ID with no live game.
var ErrNotFound = errors.New("session not found")

// session pairs a game with the mutex that serializes access to it.
type session struct {
	mu   sync.Mutex
	game *engine.Game
}

// Manager is a registry of live game sessions keyed by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*session)}
}

// Create starts a new game between the given players and returns its
// session ID.
func (m *Manager) Create(white, black chess.Player) string {
	id := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &session{game: engine.NewGameWithPlayers(white, black)}
	return id
}

// CreateFromFEN starts a new game from a custom position.
func (m *Manager) CreateFromFEN(fen string) (string, error) {
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &session{game: game}
	return id, nil
}

// WithGame runs fn with exclusive access to the identified session's
// game. No other caller observes or mutates the game while fn runs.
func (m *Manager) WithGame(id string, fn func(*engine.Game) error) error {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Remove ends a session and forgets its game.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
