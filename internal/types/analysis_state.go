package types

// AnalysisState is the immutable outcome of the most recent analysis run.
// A zero AnalysisState means no analysis has been accepted yet. State is
// never mutated in place: a successful, fully validated run produces a fresh
// value via WithReport, and a failed run leaves the caller's value untouched.
type AnalysisState struct {
	Analyzed  bool
	Report    *MatchReport
	Submitted []JDEntry
}

// WithReport returns a new state carrying the validated report and the JD
// entries it was produced from.
func (s AnalysisState) WithReport(report *MatchReport, submitted []JDEntry) AnalysisState {
	return AnalysisState{
		Analyzed:  true,
		Report:    report,
		Submitted: submitted,
	}
}
