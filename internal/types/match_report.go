// Package types provides type definitions for structured data used throughout the jobalign system.
package types

// Dimension names form a closed set; the matching service is instructed to
// score exactly these four and the validator rejects anything else. The names
// are part of the service contract and are kept verbatim.
const (
	DimensionSkillMatch   = "技能匹配度"
	DimensionExperience   = "经验相关性"
	DimensionIndustryFit  = "行业契合度"
	DimensionPresentation = "表达与亮点"
)

// FixedDimensions returns the closed set of dimension names in contract order.
func FixedDimensions() []string {
	return []string{
		DimensionSkillMatch,
		DimensionExperience,
		DimensionIndustryFit,
		DimensionPresentation,
	}
}

// MatchReport is the complete structured result of one analysis run.
// It is decoded from the matching-service response and must pass both the
// structural and the semantic validation passes before any field is trusted.
// Once validated it is treated as immutable: a later run replaces it wholesale.
type MatchReport struct {
	TotalScore         int                 `json:"total_score"`
	Dimensions         map[string]int      `json:"dimensions"`
	Highlights         []string            `json:"highlights"`
	Gaps               []string            `json:"gaps"`
	Suggestions        []Suggestion        `json:"suggestions"`
	DraftResume        string              `json:"draft_resume"`
	TargetJDOverview   []JDOverview        `json:"target_jd_overview"`
	SelectedJDIndex    int                 `json:"selected_jd_index"`
	LearningPlan       LearningPlan        `json:"learning_plan"`
	Resources          []Resource          `json:"resources"`
	JobRecommendations []JobRecommendation `json:"job_recommendations"`
}

// Suggestion is a single rewrite suggestion for one résumé sentence.
type Suggestion struct {
	Section  string `json:"section"`
	Original string `json:"original"`
	Problem  string `json:"problem"`
	Rewrite  string `json:"rewrite"`
}

// JDOverview summarizes the match against one submitted JD.
type JDOverview struct {
	JDIndex             int    `json:"jd_index"`
	JDTitle             string `json:"jd_title"`
	MatchScore          int    `json:"match_score"`
	RecommendationLevel string `json:"recommendation_level"`
	ShortComment        string `json:"short_comment"`
}

// LearningPlan is the 3-6 month growth plan for the selected direction.
type LearningPlan struct {
	TargetDirection string          `json:"target_direction"`
	Summary         string          `json:"summary"`
	SkillsToFocus   []string        `json:"skills_to_focus"`
	Stages          []LearningStage `json:"stages"`
}

// LearningStage is one phase of the learning plan.
type LearningStage struct {
	Name    string   `json:"name"`
	Goals   []string `json:"goals"`
	Actions []string `json:"actions"`
}

// Resource is a platform + search-keyword learning resource recommendation.
type Resource struct {
	Platform      string `json:"platform"`
	Category      string `json:"category"`
	SearchKeyword string `json:"search_keyword"`
	Reason        string `json:"reason"`
}

// JobRecommendation describes a similar role in the same career family.
type JobRecommendation struct {
	Title                string   `json:"title"`
	CompanyType          string   `json:"company_type"`
	Location             string   `json:"location"`
	SimilarityToTargetJD int      `json:"similarity_to_target_jd"`
	MatchReason          string   `json:"match_reason"`
	CoreRequirements     []string `json:"core_requirements"`
}

// SelectedOverview returns the overview entry matching SelectedJDIndex,
// or nil if the report carries no such entry.
func (r *MatchReport) SelectedOverview() *JDOverview {
	for i := range r.TargetJDOverview {
		if r.TargetJDOverview[i].JDIndex == r.SelectedJDIndex {
			return &r.TargetJDOverview[i]
		}
	}
	return nil
}
