package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "resume draft",
			input: "# 张三\n## 技能\n- Python\n- SQL\n**概述**",
			want: []Block{
				{Type: BlockHeading1, Text: "张三"},
				{Type: BlockHeading2, Text: "技能"},
				{Type: BlockBullet, Text: "Python"},
				{Type: BlockBullet, Text: "SQL"},
				{Type: BlockParagraph, Text: "概述"},
			},
		},
		{
			name:  "third level heading",
			input: "### 项目经历",
			want:  []Block{{Type: BlockHeading3, Text: "项目经历"}},
		},
		{
			name:  "asterisk bullet",
			input: "* 负责需求分析",
			want:  []Block{{Type: BlockBullet, Text: "负责需求分析"}},
		},
		{
			name:  "blank lines are separators",
			input: "第一段\n\n\n第二段",
			want: []Block{
				{Type: BlockParagraph, Text: "第一段"},
				{Type: BlockParagraph, Text: "第二段"},
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  ## 教育背景  ",
			want:  []Block{{Type: BlockHeading2, Text: "教育背景"}},
		},
		{
			name:  "bold markers stripped from paragraphs",
			input: "熟悉 **大模型** 与 **数据分析**",
			want:  []Block{{Type: BlockParagraph, Text: "熟悉 大模型 与 数据分析"}},
		},
		{
			name:  "heading prefix wins over bold",
			input: "## **技能**",
			want:  []Block{{Type: BlockHeading2, Text: "**技能**"}},
		},
		{
			name:  "bullet prefix wins over bold",
			input: "- **Python**",
			want:  []Block{{Type: BlockBullet, Text: "**Python**"}},
		},
		{
			name:  "hash without space is a paragraph",
			input: "#标题",
			want:  []Block{{Type: BlockParagraph, Text: "#标题"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompileMarkdown(tt.input))
		})
	}
}
