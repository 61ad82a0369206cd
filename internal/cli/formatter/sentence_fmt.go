package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

// FormatTaskList renders sentence-builder tasks as a table.
func FormatTaskList(tasks []domain.LevelTask) string {
	if len(tasks) == 0 {
		return Dim("No sentence tasks for that level.") + "\n"
	}
	headers := []string{"ID", "TIER", "SLOTS", "PROMPT"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		slots := make([]string, 0, len(t.Slots))
		for _, s := range t.Slots {
			slots = append(slots, string(s))
		}
		rows = append(rows, []string{
			Bold(t.ID),
			strconv.Itoa(t.Level),
			Dim(strings.Join(slots, " ")),
			t.Prompt,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskOptions lists the word IDs a learner may place in each slot.
func FormatTaskOptions(task domain.LevelTask) string {
	var b strings.Builder
	b.WriteString(Bold(task.Prompt) + "\n\n")
	for _, slot := range task.Slots {
		words := task.OptionsFor(slot)
		opts := make([]string, 0, len(words))
		for _, w := range words {
			opts = append(opts, fmt.Sprintf("%s %s", w.Text, Dim("("+w.ID+")")))
		}
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(fmt.Sprintf("%-14s", slot)), strings.Join(opts, ", "))
	}
	return RenderBox(task.ID, b.String())
}

// FormatValidation renders a graded selection with its child-facing feedback.
func FormatValidation(r domain.ValidationResult) string {
	var b strings.Builder
	title := StyleGreen.Render(r.Feedback.Title)
	if !r.IsCorrect {
		title = StyleYellow.Render(r.Feedback.Title)
	}
	fmt.Fprintf(&b, "%s %s\n", Mark(r.IsCorrect), title)
	if r.NormalizedSentence != "" {
		fmt.Fprintf(&b, "  %s\n", Bold(r.NormalizedSentence))
	}
	if r.Feedback.Message != "" {
		fmt.Fprintf(&b, "  %s\n", r.Feedback.Message)
	}
	if r.Feedback.Hint != "" {
		fmt.Fprintf(&b, "  %s\n", Dim("Hint: "+r.Feedback.Hint))
	}
	if r.ErrorType != nil {
		fmt.Fprintf(&b, "  %s\n", Dim(Humanize(string(*r.ErrorType))))
	}
	return b.String()
}
