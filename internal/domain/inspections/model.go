package inspections

import "time"

// @Enum pending, passed, failed
type Result string

const (
	ResultPending Result = "pending"
	ResultPassed  Result = "passed"
	ResultFailed  Result = "failed"
)

// Inspection: visita al hogar de un adoptante. Se borra junto con el perfil.
type Inspection struct {
	ID           string
	AdopterID    string
	InspectorID  string
	ScheduledFor time.Time
	Result       Result
	Notes        string

	CreatedAt time.Time
}
