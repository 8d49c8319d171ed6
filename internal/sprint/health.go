package sprint

// HealthStatus is the categorical rollup of sprint health.
// Value object - immutable string enum.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthWarning   HealthStatus = "warning"
	HealthCritical  HealthStatus = "critical"
)

// Display colors for each status, consumed by dashboard clients.
const (
	colorExcellent = "#10B981"
	colorGood      = "#059669"
	colorWarning   = "#F59E0B"
	colorCritical  = "#EF4444"
)

// Health pairs a status with its display color.
type Health struct {
	Status HealthStatus `json:"status"`
	Color  string       `json:"color"`
}

// EvaluateHealth derives a health status from completion percentage,
// utilization percentage, and calendar days remaining.
//
// The rules form an ordered chain and the first match wins. The
// ordering is a deliberate tie-break policy: a sprint with high
// completion and utilization but 2 or fewer days left falls through
// rule 1 into rule 2 ("good"), not "excellent". Total function -
// always returns one of the four statuses.
func EvaluateHealth(completion, utilization, daysRemaining int) Health {
	switch {
	case completion >= 90 && utilization >= 80 && daysRemaining > 2:
		return Health{Status: HealthExcellent, Color: colorExcellent}
	case completion >= 75 && utilization >= 70:
		return Health{Status: HealthGood, Color: colorGood}
	case completion >= 50 && utilization >= 50:
		return Health{Status: HealthWarning, Color: colorWarning}
	default:
		return Health{Status: HealthCritical, Color: colorCritical}
	}
}
