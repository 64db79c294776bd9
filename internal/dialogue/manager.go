package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/ai"
	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/logger"
	"github.com/spigell/pathfinder/internal/profile"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message must not be empty")

	// ErrUnavailable is reported when sessions have no text generator behind them.
	ErrUnavailable = fmt.Errorf("dialogue is not initialized: %w", ai.ErrUnavailable)
)

// Snapshot is a read-only view of a session.
type Snapshot struct {
	ID              string                 `json:"id"`
	Phase           Phase                  `json:"phase"`
	Questions       int                    `json:"questions_asked"`
	Profile         profile.StudentProfile `json:"profile"`
	Recommendations []career.Scored        `json:"recommendations"`
	History         []Message              `json:"history"`
}

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Manager keeps live sessions keyed by id. Turns of one session run one at a time.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry

	deps   Deps
	cfg    Config
	logger *zap.Logger
	newID  func() string
}

func NewManager(deps Deps, cfg Config) *Manager {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Manager{
		sessions: make(map[string]*entry),
		deps:     deps,
		cfg:      cfg,
		logger:   deps.Logger,
		newID:    uuid.NewString,
	}
}

// Available reports whether the sessions are backed by a text generator.
// Without one a session cannot learn anything about the student.
func (m *Manager) Available() bool {
	switch m.deps.Generator.(type) {
	case nil, ai.Unavailable, *ai.Unavailable:
		return false
	}
	return true
}

// StartSession creates a session and returns its id together with the greeting.
func (m *Manager) StartSession(ctx context.Context) (string, string) {
	id := m.newID()
	e := &entry{session: NewSession(id, m.deps, m.cfg)}

	e.mu.Lock()
	defer e.mu.Unlock()

	m.mu.Lock()
	m.sessions[id] = e
	m.mu.Unlock()

	m.logger.Info("session started", zap.String(logger.FieldSession, id))

	return id, e.session.Start(ctx)
}

// ProcessTurn runs one student turn in the session.
func (m *Manager) ProcessTurn(ctx context.Context, id, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}

	e, err := m.lookup(id)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session.ProcessTurn(ctx, text), nil
}

// Recommendations returns the cached recommendations, nil until matching ran.
func (m *Manager) Recommendations(id string) ([]career.Scored, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session.Recommendations(), nil
}

func (m *Manager) Phase(id string) (Phase, error) {
	e, err := m.lookup(id)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session.Phase(), nil
}

func (m *Manager) Snapshot(id string) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	return Snapshot{
		ID:              s.ID(),
		Phase:           s.Phase(),
		Questions:       s.Questions(),
		Profile:         s.Profile(),
		Recommendations: s.Recommendations(),
		History:         s.History(),
	}, nil
}

// End forgets the session.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)

	m.logger.Info("session ended", zap.String(logger.FieldSession, id))
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}
