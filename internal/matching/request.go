// Package matching builds matching-service requests, dispatches them to the
// configured provider, and turns validated responses into a fresh analysis
// state.
package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobalign/internal/prompts"
	"github.com/jonathan/jobalign/internal/types"
)

const (
	// MaxResumeRunes caps the résumé text sent to the service.
	MaxResumeRunes = 4000
	// MaxJDRunes caps each individual JD text sent to the service.
	MaxJDRunes = 2500
)

// Payload is one fully assembled matching request: a fixed system
// instruction describing the required response schema, and a user message
// carrying the résumé and the delimited JD blocks.
type Payload struct {
	System string
	User   string
}

// BuildRequest assembles the request payload from résumé text and the
// submitted JD entries. JD blocks keep submission order; the résumé and each
// JD are truncated by rune count. An empty résumé or an empty JD list is a
// *RequestError.
func BuildRequest(resume string, jds []types.JDEntry) (*Payload, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, &RequestError{Message: "resume text is empty"}
	}
	if len(jds) == 0 {
		return nil, &RequestError{Message: "no job descriptions submitted"}
	}

	blocks := make([]string, 0, len(jds))
	for _, jd := range jds {
		title := strings.TrimSpace(jd.Title)
		if title == "" {
			title = fmt.Sprintf("JD_%d", jd.Index)
		}
		blocks = append(blocks, fmt.Sprintf("<<<JD_%d - %s>>>\n%s",
			jd.Index, title, truncateRunes(jd.Text, MaxJDRunes)))
	}

	user := prompts.Format(prompts.MustGet("matching.json", "user-payload"), map[string]string{
		"Resume":   truncateRunes(resume, MaxResumeRunes),
		"JDBlocks": strings.Join(blocks, "\n\n"),
	})

	return &Payload{
		System: prompts.MustGet("matching.json", "system-instruction"),
		User:   user,
	}, nil
}

// truncateRunes cuts s to at most limit runes. Truncation counts runes, not
// bytes, so multi-byte CJK text is never split mid-character.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
