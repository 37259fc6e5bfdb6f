package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MetricType enumerates the kinds of values an assessment can measure.
type MetricType string

const (
	MetricWeight    MetricType = "weight"
	MetricReps      MetricType = "reps"
	MetricTime      MetricType = "time"
	MetricDistance  MetricType = "distance"
	MetricHeartRate MetricType = "heart_rate"
	MetricRPE       MetricType = "rpe" // Rate of Perceived Exertion.
	MetricHeight    MetricType = "height"
	MetricLength    MetricType = "length"
)

// metricUnits maps each metric type to its allowed units.
// Types absent from the map are unitless (reps, heart_rate, rpe).
var metricUnits = map[MetricType][]string{
	MetricWeight:   {"kg", "lb"},
	MetricDistance: {"m", "km", "mi", "yd"},
	MetricTime:     {"s", "min", "h"},
	MetricHeight:   {"cm", "in"},
	MetricLength:   {"cm", "m", "in"},
}

// IsValid checks if the MetricType is a known value.
func (t MetricType) IsValid() bool {
	switch t {
	case MetricWeight, MetricReps, MetricTime, MetricDistance,
		MetricHeartRate, MetricRPE, MetricHeight, MetricLength:
		return true
	default:
		return false
	}
}

// ValidateUnit checks that the unit is allowed for this metric type.
// Unitless types must carry an empty unit.
func (t MetricType) ValidateUnit(unit string) error {
	allowed, hasUnits := metricUnits[t]
	if !hasUnits {
		if unit != "" {
			return fmt.Errorf("metric type %q does not take a unit", t)
		}

		return nil
	}

	for _, u := range allowed {
		if u == unit {
			return nil
		}
	}

	return fmt.Errorf("invalid unit %q for metric type %q, allowed: %v", unit, t, allowed)
}

// AssessmentMetric declares one measured dimension of a parameter.
type AssessmentMetric struct {
	Type MetricType `json:"type"`
	Unit string     `json:"unit,omitempty"` // Empty for unitless types.
}

// AssessmentParameter is a named, measurable item within an assessment,
// e.g. "Countermovement jump" measured in height and time.
type AssessmentParameter struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Metrics     []AssessmentMetric `json:"metrics"`
}

// MetricResult is one recorded value from a taken assessment.
type MetricResult struct {
	Type  MetricType `json:"type"`
	Value float64    `json:"value"`
	Unit  string     `json:"unit,omitempty"`
}

// Assessment is a fitness test owned by a single user: a definition
// (parameters) and, once taken, the recorded results.
type Assessment struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	TeamAssessmentID *uuid.UUID // Set when adopted from a team template.
	Title            string
	Instructions     string
	Parameters       []AssessmentParameter
	Results          []MetricResult // nil until the assessment has been taken.
	TakenAt          *time.Time     // nil until the assessment has been taken.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks the structural invariants of the assessment definition:
// at least one parameter, each with at least one metric, each metric
// carrying a unit consistent with its type.
func (a *Assessment) Validate() error {
	return validateParameters(a.Parameters)
}

func validateParameters(params []AssessmentParameter) error {
	if len(params) == 0 {
		return fmt.Errorf("at least one parameter is required")
	}

	for _, p := range params {
		if len(p.Metrics) == 0 {
			return fmt.Errorf("parameter %q requires at least one metric", p.Name)
		}
		for _, m := range p.Metrics {
			if !m.Type.IsValid() {
				return fmt.Errorf("parameter %q has unknown metric type %q", p.Name, m.Type)
			}
			if err := m.Type.ValidateUnit(m.Unit); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateResults checks recorded results: at least one value, each
// non-negative with a type/unit combination that is allowed.
func ValidateResults(results []MetricResult) error {
	if len(results) == 0 {
		return fmt.Errorf("at least one result is required")
	}

	for _, r := range results {
		if !r.Type.IsValid() {
			return fmt.Errorf("unknown metric type %q in results", r.Type)
		}
		if r.Value < 0 {
			return fmt.Errorf("metric %q value must not be negative", r.Type)
		}
		if err := r.Type.ValidateUnit(r.Unit); err != nil {
			return err
		}
	}

	return nil
}
