package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored against the pass mark: green at or above it, yellow
// within 20 points below, red otherwise. A zero passMark colors green.
func RenderProgress(pct float64, width int, passMark float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct < passMark-0.2 {
		style = StyleRed
	} else if pct < passMark {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// RenderQuestionTrack renders one glyph per question in presentation order:
// ✔/✘ for answered questions, ▶ for the current one and · for the rest.
func RenderQuestionTrack(questions []domain.CurriculumLevelQuestion, s *domain.StoredLevelSessionState) string {
	parts := make([]string, 0, len(questions))
	for i, q := range questions {
		if r, ok := s.ResultsByQuestionNumber[q.QuestionNumber]; ok {
			parts = append(parts, Mark(r.IsCorrect))
			continue
		}
		if i == s.QuestionIndex {
			parts = append(parts, StyleYellowBold.Render("▶"))
			continue
		}
		parts = append(parts, Dim("·"))
	}
	return strings.Join(parts, " ")
}
