package impl

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

var errSuperseded = errors.New("superseded by a newer search")

type inflightSearch struct {
	seq    uint64
	cancel context.CancelCauseFunc
}

// latestTracker remembers the newest search of each client. Starting a search
// cancels the one it replaces.
type latestTracker struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflightSearch
}

func newLatestTracker() *latestTracker {
	return &latestTracker{inflight: make(map[string]inflightSearch)}
}

// begin registers a new search for clientID and returns its context and
// sequence number. done must be called when the search finishes.
func (l *latestTracker) begin(ctx context.Context, clientID string) (context.Context, uint64, func()) {
	searchCtx, cancel := context.WithCancelCause(ctx)

	l.mu.Lock()
	l.seq++
	seq := l.seq
	if prev, ok := l.inflight[clientID]; ok {
		prev.cancel(errSuperseded)
	}
	l.inflight[clientID] = inflightSearch{seq: seq, cancel: cancel}
	l.mu.Unlock()

	done := func() {
		l.mu.Lock()
		if cur, ok := l.inflight[clientID]; ok && cur.seq == seq {
			delete(l.inflight, clientID)
		}
		l.mu.Unlock()
		cancel(nil)
	}

	return searchCtx, seq, done
}

// superseded reports whether a newer search of the same client replaced seq.
func (l *latestTracker) superseded(ctx context.Context, clientID string, seq uint64) bool {
	if errors.Is(context.Cause(ctx), errSuperseded) {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cur, ok := l.inflight[clientID]

	return ok && cur.seq != seq
}
