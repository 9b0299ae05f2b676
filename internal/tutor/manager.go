package tutor

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrSessionNotFound = errors.New("tutor session not found")

// Manager owns the live tutoring conversations.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Controller

	completer Completer
	logger    zerolog.Logger
}

// NewManager constructs a tutor session manager.
func NewManager(completer Completer, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions:  make(map[uuid.UUID]*Controller),
		completer: completer,
		logger:    logger.With().Str("component", "tutor_manager").Logger(),
	}
}

// Start opens a conversation and returns its ID.
func (m *Manager) Start(subject string, showSteps bool) *Controller {
	ctrl := NewController(m.completer, subject, showSteps, m.logger)

	m.mu.Lock()
	m.sessions[ctrl.ID()] = ctrl
	m.mu.Unlock()

	m.logger.Info().Str("session_id", ctrl.ID().String()).Str("subject", subject).Msg("tutor session started")
	return ctrl
}

// Get looks up a conversation by ID.
func (m *Manager) Get(id uuid.UUID) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctrl, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ctrl, nil
}

// Teardown ends a conversation, discarding any in-flight reply.
func (m *Manager) Teardown(id uuid.UUID) error {
	m.mu.Lock()
	ctrl, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	ctrl.Close()
	m.logger.Info().Str("session_id", id.String()).Msg("tutor session torn down")
	return nil
}

// CloseAll tears down every conversation, used at shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		_ = m.Teardown(id)
	}
}
