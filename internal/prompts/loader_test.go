package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_MatchingPrompts(t *testing.T) {
	system, err := Get("matching.json", "system-instruction")
	require.NoError(t, err)
	assert.Contains(t, system, "total_score")
	assert.Contains(t, system, "selected_jd_index")
	assert.Contains(t, system, "draft_resume")

	user, err := Get("matching.json", "user-payload")
	require.NoError(t, err)
	assert.Contains(t, user, "{{.Resume}}")
	assert.Contains(t, user, "{{.JDBlocks}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("matching.json", "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "key")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	template := "resume: {{.Resume}} jds: {{.JDBlocks}}"
	got := Format(template, map[string]string{
		"Resume":   "text-a",
		"JDBlocks": "text-b",
	})
	assert.Equal(t, "resume: text-a jds: text-b", got)
	assert.False(t, strings.Contains(got, "{{"))
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("matching.json", "missing") })
}
