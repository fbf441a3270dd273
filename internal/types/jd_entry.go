package types

// JDEntry is one job description submitted for analysis. Index is 1-based,
// assigned in submission order, and unique within a request; the matching
// service cross-references it in target_jd_overview and selected_jd_index.
type JDEntry struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// IndexSet returns the indices of the given entries in submission order.
func IndexSet(entries []JDEntry) []int {
	indices := make([]int, len(entries))
	for i, e := range entries {
		indices[i] = e.Index
	}
	return indices
}
