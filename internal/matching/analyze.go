package matching

import (
	"context"

	"github.com/jonathan/jobalign/internal/types"
	"github.com/jonathan/jobalign/internal/validation"
)

// Analyze runs one complete analysis: build the request, make the single
// service call, validate the response through both passes, and return a
// fresh state carrying the accepted report.
//
// On any failure the input state is returned unchanged, so callers keep
// their previously accepted report (if any) instead of a partial result.
func Analyze(ctx context.Context, client Client, state types.AnalysisState, resume string, jds []types.JDEntry) (types.AnalysisState, error) {
	payload, err := BuildRequest(resume, jds)
	if err != nil {
		return state, err
	}

	raw, err := client.CreateReport(ctx, payload)
	if err != nil {
		return state, err
	}

	report, err := validation.ValidateReport([]byte(CleanJSONBlock(raw)), jds)
	if err != nil {
		return state, err
	}

	return state.WithReport(report, jds), nil
}
