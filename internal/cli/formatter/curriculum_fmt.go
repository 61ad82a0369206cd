package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/domain"
)

// FormatModuleTree renders every module with its levels grouped by literacy
// stage. Modules appear in curriculum order.
func FormatModuleTree(curr map[domain.ModuleID][]domain.ModuleLevelDefinition) string {
	var items []TreeItem
	for _, id := range domain.AllModules() {
		levels := curr[id]
		items = append(items, TreeItem{
			Title:  Bold(curriculum.ModuleTitle(id)) + " " + Dim(string(id)),
			Detail: fmt.Sprintf("%d levels", len(levels)),
		})

		bands := stageBands(levels)
		for i, band := range bands {
			first, last := band[0], band[len(band)-1]
			items = append(items, TreeItem{
				Title:  fmt.Sprintf("L%d-%d %s", first.LevelNumber, last.LevelNumber, StageColor(first.LiteracyStage).Render(string(first.LiteracyStage))),
				Level:  1,
				IsLast: i == len(bands)-1,
				Detail: fmt.Sprintf("≤%d words", last.MaxSentenceLength),
			})
		}
	}
	return RenderBox("Curriculum", RenderTree(items))
}

func stageBands(levels []domain.ModuleLevelDefinition) [][]domain.ModuleLevelDefinition {
	var out [][]domain.ModuleLevelDefinition
	for _, l := range levels {
		if n := len(out); n > 0 && out[n-1][0].LiteracyStage == l.LiteracyStage {
			out[n-1] = append(out[n-1], l)
			continue
		}
		out = append(out, []domain.ModuleLevelDefinition{l})
	}
	return out
}

// FormatLevel renders a module level. questions is the presentation order to
// list, which may differ from def.Questions when shuffled.
func FormatLevel(def domain.ModuleLevelDefinition, questions []domain.CurriculumLevelQuestion) string {
	var b strings.Builder

	b.WriteString(StageBadge(def.LiteracyStage) + "  " + Dim(string(def.ScaffoldingLevel)+" scaffolding") + "\n")
	b.WriteString(Bold(def.LevelObjective) + "\n\n")

	kv := func(k, v string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-16s", k)), v)
	}
	kv("Sentence length", fmt.Sprintf("up to %d words", def.MaxSentenceLength))
	kv("Vocabulary", fmt.Sprintf("%d words", def.VocabularySize))
	kv("Grammar", strings.Join(def.GrammarTargets, ", "))
	kv("Vocab domains", strings.Join(def.RecommendedVocabDomains, ", "))
	kv("Pass", fmt.Sprintf("%d of %d and %s accuracy", def.MinCorrectToPass, def.TotalQuestionsPerLevel, Percent(def.RequiredAccuracyToPass)))
	if def.ReshuffleEnabled {
		kv("Order", "reshuffled each attempt")
	} else {
		kv("Order", "fixed")
	}
	if def.FluencyTimeTargetSeconds != nil {
		kv("Time target", fmt.Sprintf("%ds", *def.FluencyTimeTargetSeconds))
	}
	b.WriteString("\n")

	headers := []string{"#", "ROLE", "INTERACTION", "MAX", "SUPPORT", "ERRORS"}
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		support := Dim("--")
		switch {
		case q.IconSupport:
			support = StylePurple.Render("icons")
		case q.IndependentResponse:
			support = StyleYellow.Render("independent")
		}
		rows = append(rows, []string{
			strconv.Itoa(q.QuestionNumber),
			Humanize(string(q.QuestionRole)),
			Humanize(string(q.InteractionType)),
			strconv.Itoa(q.MaxResponseLength),
			support,
			Dim(strconv.Itoa(len(q.ExpectedErrorTypes))),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox(fmt.Sprintf("%s · level %d", Humanize(string(def.ModuleID)), def.LevelNumber), b.String())
}
