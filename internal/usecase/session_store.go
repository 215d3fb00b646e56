package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/route"
)

type session struct {
	mu         sync.Mutex
	planner    *route.Planner
	lastAccess time.Time
}

// SessionStore хранит Planner каждой сессии в памяти процесса.
// Доступ к одному Planner сериализуется мьютексом сессии.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	distance route.DistanceFunc
	now      func() time.Time
	logger   *zap.Logger
}

// NewSessionStore создает хранилище сессий; ttl <= 0 отключает истечение
func NewSessionStore(ttl time.Duration, distance route.DistanceFunc, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		distance: distance,
		now:      time.Now,
		logger:   logger,
	}
}

// Create заводит новую сессию с пустым выбором
func (s *SessionStore) Create() uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = &session{
		planner:    route.NewPlanner(s.distance),
		lastAccess: s.now(),
	}
	s.mu.Unlock()

	s.logger.Debug("Session created", zap.String("session_id", id.String()))
	return id
}

// With выполняет fn над Planner сессии под её мьютексом
func (s *SessionStore) With(id string, fn func(p *route.Planner) error) error {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return errors.ErrSessionNotFound
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok && s.expired(sess) {
		delete(s.sessions, sessionID)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return errors.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastAccess = s.now()
	return fn(sess.planner)
}

// Sweep удаляет истёкшие сессии и возвращает их количество
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("Expired sessions removed", zap.Int("count", removed))
	}
	return removed
}

// Len - количество активных сессий
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess *session) bool {
	if s.ttl <= 0 {
		return false
	}
	sess.mu.Lock()
	last := sess.lastAccess
	sess.mu.Unlock()
	return s.now().Sub(last) > s.ttl
}
