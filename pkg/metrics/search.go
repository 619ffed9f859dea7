package metrics

// SearchUsage captures how a verse lookup was satisfied. It rides along on
// recommendation responses and run records so historical runs stay comparable.
type SearchUsage struct {
	Query      string  `json:"query"`
	Candidates int     `json:"candidates"`
	LatencyMs  float64 `json:"latencyMs"`
	Fallback   bool    `json:"fallback,omitempty"`
}

// IsZero reports whether usage data is absent. Run records tag their usage
// field omitzero, so absent usage is dropped from the serialized record.
func (u SearchUsage) IsZero() bool {
	return u.Query == "" && u.Candidates == 0 && u.LatencyMs == 0 && !u.Fallback
}
