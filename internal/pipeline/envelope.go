package pipeline

import (
	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// SessionEnvelope carries a session with its discovery ordinal
type SessionEnvelope struct {
	Seq     int
	Session domain.Session
}

// RowEnvelope carries the rows built for the session with the same ordinal
type RowEnvelope struct {
	Seq  int
	Rows []domain.SessionRow
}
