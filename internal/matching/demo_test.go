package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobalign/internal/types"
	"github.com/jonathan/jobalign/internal/validation"
)

func TestDemoClient_ReportPassesValidation(t *testing.T) {
	client, err := NewClient(context.Background(), ClientConfig{Mode: ModeDemo})
	require.NoError(t, err)
	defer client.Close()

	raw, err := client.CreateReport(context.Background(), &Payload{})
	require.NoError(t, err)

	submitted := []types.JDEntry{
		{Index: 1, Title: "AI 产品经理", Text: "负责 AI 产品规划"},
		{Index: 2, Title: "数据产品经理", Text: "负责数据平台"},
	}
	report, err := validation.ValidateReport([]byte(CleanJSONBlock(raw)), submitted)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Len(t, report.TargetJDOverview, 2)
	assert.Contains(t, []int{1, 2}, report.SelectedJDIndex)
	for _, name := range types.FixedDimensions() {
		assert.Contains(t, report.Dimensions, name)
	}
	assert.NotEmpty(t, report.DraftResume)
}

func TestDemoClient_Stable(t *testing.T) {
	client := newDemoClient()
	first, err := client.CreateReport(context.Background(), nil)
	require.NoError(t, err)
	second, err := client.CreateReport(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", input: "  {\"a\":1}\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}
