// Package rendering compiles the markdown résumé draft into a Word document
// byte stream.
package rendering

import "strings"

// BlockType classifies one markdown line.
type BlockType int

const (
	BlockHeading1 BlockType = iota
	BlockHeading2
	BlockHeading3
	BlockBullet
	BlockParagraph
)

// Block is one classified line of the draft. Heading1 blocks render centered;
// everything else keeps default alignment.
type Block struct {
	Type BlockType
	Text string
}

// CompileMarkdown classifies the trimmed, non-empty lines of md in order.
// Blank lines are separators and produce no block. Classification is by
// first-matching prefix, checked in fixed precedence; a line is never split,
// merged, or reordered.
//
// Bold markers are handled as a textual strip: a non-heading, non-bullet line
// containing "**" loses all markers and becomes a plain paragraph. Headings
// and bullets keep their text verbatim past the prefix.
func CompileMarkdown(md string) []Block {
	var blocks []Block
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Type: BlockHeading1, Text: line[2:]})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Type: BlockHeading2, Text: line[3:]})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Type: BlockHeading3, Text: line[4:]})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Type: BlockBullet, Text: line[2:]})
		case strings.Contains(line, "**"):
			blocks = append(blocks, Block{Type: BlockParagraph, Text: strings.ReplaceAll(line, "**", "")})
		default:
			blocks = append(blocks, Block{Type: BlockParagraph, Text: line})
		}
	}
	return blocks
}
