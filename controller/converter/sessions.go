package converter

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is the cancellation cause of an evaluation
// replaced by a newer input change of the same session
var ErrSuperseded = errors.New("superseded by a newer input change")

// Sessions serializes evaluations per browser session:
// beginning a new one cancels the one still in flight
type Sessions struct {
	lock     sync.Mutex             // guards inflight
	inflight map[string]*evaluation // latest evaluation per session id
}

type evaluation struct {
	cancel context.CancelCauseFunc
}

func NewSessions() *Sessions {
	return &Sessions{inflight: make(map[string]*evaluation)}
}

// Begin starts an evaluation for session id and returns its context
// along with the func to call once the evaluation is rendered.
// An empty id is never serialized
func (s *Sessions) Begin(parent context.Context, id string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	if id == "" {
		return ctx, func() { cancel(nil) }
	}

	ev := &evaluation{cancel: cancel}

	s.lock.Lock()
	if prev, ok := s.inflight[id]; ok {
		prev.cancel(ErrSuperseded)
	}
	s.inflight[id] = ev
	s.lock.Unlock()

	return ctx, func() {
		s.lock.Lock()
		if s.inflight[id] == ev {
			delete(s.inflight, id)
		}
		s.lock.Unlock()

		cancel(nil)
	}
}

// InFlight returns number of sessions with a running evaluation
func (s *Sessions) InFlight() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.inflight)
}

// Superseded reports whether ctx was cancelled by a newer evaluation
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), ErrSuperseded)
}
