// Package validation performs the semantic pass over a structurally valid
// matching response: cross-references against the submitted JD set, the fixed
// dimension contract, and defaulting of optional list fields.
package validation

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jonathan/jobalign/internal/schemas"
	"github.com/jonathan/jobalign/internal/types"
)

// ValidateReport runs both validation passes over raw response bytes.
//
// The structural pass (JSON Schema) runs first; if it fails, its aggregated
// *schemas.ValidationError is returned as-is and the semantic pass never runs.
// The semantic pass then checks the report against the submitted JD entries
// and collects every violation into a single *schemas.ValidationError.
//
// On success the returned report has all optional list fields non-nil, so
// callers can range over them without nil checks.
func ValidateReport(raw []byte, submitted []types.JDEntry) (*types.MatchReport, error) {
	if err := schemas.ValidateMatchReportJSON(raw); err != nil {
		return nil, err
	}

	var report types.MatchReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, &schemas.ValidationError{Errors: []schemas.FieldError{{
			Field:   "(root)",
			Message: fmt.Sprintf("cannot decode report: %v", err),
		}}}
	}

	ve := &schemas.ValidationError{}
	checkDimensions(&report, ve)
	checkOverview(&report, submitted, ve)
	checkSelectedIndex(&report, submitted, ve)
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	applyDefaults(&report)
	return &report, nil
}

// checkDimensions enforces the closed dimension set: exactly the fixed four
// names, no extras, no omissions.
func checkDimensions(report *types.MatchReport, ve *schemas.ValidationError) {
	expected := types.FixedDimensions()
	for _, name := range expected {
		if _, ok := report.Dimensions[name]; !ok {
			ve.Add("dimensions", fmt.Sprintf("missing required dimension %q", name))
		}
	}

	known := make(map[string]bool, len(expected))
	for _, name := range expected {
		known[name] = true
	}
	var extras []string
	for name := range report.Dimensions {
		if !known[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		ve.Add("dimensions", fmt.Sprintf("unexpected dimension %q", name))
	}
}

// checkOverview requires target_jd_overview to cover exactly the submitted
// JD index set, with no duplicates and no indices outside the set.
func checkOverview(report *types.MatchReport, submitted []types.JDEntry, ve *schemas.ValidationError) {
	submittedSet := make(map[int]bool, len(submitted))
	for _, e := range submitted {
		submittedSet[e.Index] = true
	}

	seen := make(map[int]bool, len(report.TargetJDOverview))
	for i, ov := range report.TargetJDOverview {
		field := fmt.Sprintf("target_jd_overview.%d.jd_index", i)
		if !submittedSet[ov.JDIndex] {
			ve.Add(field, fmt.Sprintf("index %d does not match any submitted JD", ov.JDIndex))
			continue
		}
		if seen[ov.JDIndex] {
			ve.Add(field, fmt.Sprintf("index %d appears more than once", ov.JDIndex))
			continue
		}
		seen[ov.JDIndex] = true
	}

	for _, e := range submitted {
		if !seen[e.Index] {
			ve.Add("target_jd_overview", fmt.Sprintf("no overview entry for submitted JD %d", e.Index))
		}
	}
}

// checkSelectedIndex requires selected_jd_index to name one of the submitted
// JDs.
func checkSelectedIndex(report *types.MatchReport, submitted []types.JDEntry, ve *schemas.ValidationError) {
	for _, e := range submitted {
		if e.Index == report.SelectedJDIndex {
			return
		}
	}
	ve.Add("selected_jd_index", fmt.Sprintf("index %d does not match any submitted JD", report.SelectedJDIndex))
}

// applyDefaults replaces nil optional lists with empty ones so downstream
// rendering never branches on presence.
func applyDefaults(report *types.MatchReport) {
	if report.Highlights == nil {
		report.Highlights = []string{}
	}
	if report.Gaps == nil {
		report.Gaps = []string{}
	}
	if report.Suggestions == nil {
		report.Suggestions = []types.Suggestion{}
	}
	if report.Resources == nil {
		report.Resources = []types.Resource{}
	}
	if report.JobRecommendations == nil {
		report.JobRecommendations = []types.JobRecommendation{}
	}
	if report.LearningPlan.SkillsToFocus == nil {
		report.LearningPlan.SkillsToFocus = []string{}
	}
	if report.LearningPlan.Stages == nil {
		report.LearningPlan.Stages = []types.LearningStage{}
	}
	for i := range report.LearningPlan.Stages {
		stage := &report.LearningPlan.Stages[i]
		if stage.Goals == nil {
			stage.Goals = []string{}
		}
		if stage.Actions == nil {
			stage.Actions = []string{}
		}
	}
}
