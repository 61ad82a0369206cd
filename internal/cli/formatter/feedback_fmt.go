package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/feedback"
)

const feedbackBarWidth = 10

// FormatFeedback renders a scored sentence.
func FormatFeedback(resp feedback.Response) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", Dim("Score"), RenderProgress(float64(resp.Score)/100, feedbackBarWidth, 0.7))
	if resp.Summary != "" {
		b.WriteString("\n" + Bold(resp.Summary) + "\n")
	}
	if len(resp.Strengths) > 0 {
		b.WriteString("\n")
		for _, s := range resp.Strengths {
			b.WriteString(StyleGreen.Render("  + "+s) + "\n")
		}
	}
	if len(resp.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range resp.Suggestions {
			b.WriteString(StyleYellow.Render("  → "+s) + "\n")
		}
	}
	if resp.CorrectedSentence != "" {
		fmt.Fprintf(&b, "\n%s %s\n", Dim("Try:"), StyleBlue.Render(resp.CorrectedSentence))
	}
	if resp.Encouragement != "" {
		b.WriteString("\n" + StylePurple.Render(resp.Encouragement) + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("\nsource: %s", resp.Source)))

	return RenderBox("Feedback", b.String())
}
