package sessions

import (
	"iter"
	"time"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// DefaultTimeout is the default inactivity window measured from a session's first payment
const DefaultTimeout = 600 * time.Second

// Segmenter groups indexed payments into sessions
type Segmenter struct {
	timeout     time.Duration
	maxSessions int
}

// NewSegmenter creates a segmenter. maxSessions <= 0 disables the cap.
func NewSegmenter(timeout time.Duration, maxSessions int) *Segmenter {
	return &Segmenter{
		timeout:     timeout,
		maxSessions: maxSessions,
	}
}

// Sessions yields sessions from payments already ordered by Index.
//
// A payment opens a new session when its user differs from the current one or
// when it lies more than the timeout after the current session's start. The
// window is anchored at the start, so a session never spans more than the
// timeout no matter how close consecutive payments are.
//
// Iteration stops once maxSessions sessions have been yielded; the session
// being built at that moment is dropped.
func (s *Segmenter) Sessions(payments []domain.Payment) iter.Seq[domain.Session] {
	return func(yield func(domain.Session) bool) {
		var current []domain.Payment
		emitted := 0

		flush := func() bool {
			session := newSession(current)
			current = nil
			emitted++
			return yield(session)
		}

		for _, p := range payments {
			if len(current) > 0 && s.startsNewSession(current[0], p) {
				if !flush() || s.capped(emitted) {
					return
				}
			}
			current = append(current, p)
		}

		if len(current) > 0 {
			flush()
		}
	}
}

func (s *Segmenter) startsNewSession(first, p domain.Payment) bool {
	return first.UserID != p.UserID || p.FinishedAt.Sub(first.FinishedAt) > s.timeout
}

func (s *Segmenter) capped(emitted int) bool {
	return s.maxSessions > 0 && emitted >= s.maxSessions
}

func newSession(payments []domain.Payment) domain.Session {
	first := payments[0]
	return domain.Session{
		ID:       SessionID(first.UserID, first.FinishedAt),
		UserID:   first.UserID,
		Start:    first.FinishedAt,
		Payments: payments,
	}
}
