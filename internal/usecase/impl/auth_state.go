package impl

import (
	"sync"

	"storefront/internal/domain/entity"
)

// authState holds the published current-user state of every subject seen by
// the service. Snapshots are replaced wholesale; a published *entity.User is
// never mutated afterwards.
type authState struct {
	mu       sync.Mutex
	subjects map[string]*subjectState
	nextSub  int
}

type subjectState struct {
	// handling serializes event processing so each event publishes exactly once and in order.
	handling    sync.Mutex
	snapshot    entity.AuthSnapshot
	processed   bool
	subscribers map[int]chan entity.AuthSnapshot
}

func newAuthState() *authState {
	return &authState{subjects: make(map[string]*subjectState)}
}

// subject returns the state of id, creating a loading one on first use.
// Callers must hold s.mu.
func (s *authState) subject(id string) *subjectState {
	st, ok := s.subjects[id]
	if !ok {
		st = &subjectState{
			snapshot:    entity.AuthSnapshot{IsLoading: true},
			subscribers: make(map[int]chan entity.AuthSnapshot),
		}
		s.subjects[id] = st
	}

	return st
}

// lockEvent acquires the per-subject event lock. The returned function releases it.
func (s *authState) lockEvent(id string) func() {
	s.mu.Lock()
	st := s.subject(id)
	s.mu.Unlock()

	st.handling.Lock()

	return st.handling.Unlock
}

// processed reports whether a session-change event for id has been handled.
func (s *authState) processed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.subjects[id]

	return ok && st.processed
}

// snapshot returns the current state of id.
func (s *authState) snapshot(id string) entity.AuthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.subjects[id]
	if !ok {
		return entity.AuthSnapshot{IsLoading: true}
	}

	return st.snapshot
}

// publish replaces the current user of id, clears the loading flag and
// notifies every subscriber.
func (s *authState) publish(id string, user *entity.User) entity.AuthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.subject(id)
	st.snapshot = entity.AuthSnapshot{User: user, IsLoading: false}
	st.processed = true
	for _, ch := range st.subscribers {
		offerLatest(ch, st.snapshot)
	}

	return st.snapshot
}

// subscribe registers a subscriber for id. The current snapshot is queued first.
func (s *authState) subscribe(id string) (<-chan entity.AuthSnapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.subject(id)
	key := s.nextSub
	s.nextSub++

	ch := make(chan entity.AuthSnapshot, 1)
	ch <- st.snapshot
	st.subscribers[key] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(st.subscribers, key)
			close(ch)
		})
	}

	return ch, cancel
}

// offerLatest delivers snap without blocking. A slow subscriber that has not
// read the previous snapshot gets it replaced by the newer one.
func offerLatest(ch chan entity.AuthSnapshot, snap entity.AuthSnapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
