package helper

// Achievement is a catalog entry describing an earnable badge.
// The catalog itself is loaded by the infrastructure layer; the domain
// only cares about IDs and threshold predicates.
type Achievement struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Metric      string `yaml:"metric" json:"metric"`
	Threshold   int    `yaml:"threshold" json:"threshold"`
}

// Metrics an achievement threshold can be evaluated against.
const (
	MetricSessions = "sessions"
	MetricKudos    = "kudos"
)

// HelperStats is the snapshot of counters the evaluator runs over.
type HelperStats struct {
	SessionCount int
	KudosCount   int
}

// MetricValue returns the stat the achievement's predicate applies to.
func (a Achievement) MetricValue(stats HelperStats) int {
	switch a.Metric {
	case MetricSessions:
		return stats.SessionCount
	case MetricKudos:
		return stats.KudosCount
	default:
		return 0
	}
}

// IsEarned reports whether the stats snapshot crosses the threshold.
func (a Achievement) IsEarned(stats HelperStats) bool {
	return a.MetricValue(stats) >= a.Threshold
}
