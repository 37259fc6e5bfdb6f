package entity

import (
	"time"

	"github.com/google/uuid"
)

// SummaryPeriod is the cadence a summary covers.
type SummaryPeriod string

const (
	SummaryDaily   SummaryPeriod = "daily"
	SummaryWeekly  SummaryPeriod = "weekly"
	SummaryMonthly SummaryPeriod = "monthly"
)

// IsValid checks if the SummaryPeriod is a valid value.
func (p SummaryPeriod) IsValid() bool {
	switch p {
	case SummaryDaily, SummaryWeekly, SummaryMonthly:
		return true
	default:
		return false
	}
}

// Duration returns an approximate length of the period, used to decide
// whether a new summary is due.
func (p SummaryPeriod) Duration() time.Duration {
	switch p {
	case SummaryDaily:
		return 24 * time.Hour
	case SummaryWeekly:
		return 7 * 24 * time.Hour
	case SummaryMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Summary is a periodic digest of a user's activity: one text section per
// tracked area plus a general line. Summaries are generated by the worker
// and are read-only through the API.
type Summary struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Period    SummaryPeriod
	Mood      string
	Journal   string
	Workout   string
	Goals     string
	General   string
	CreatedAt time.Time
}
