package curriculum

import (
	"fmt"
	"reflect"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/samber/lo"
)

// Audit check names, in report order.
const (
	CheckModuleCount         = "module_count"
	CheckLevelsPerModule     = "levels_per_module"
	CheckQuestionsPerLevel   = "questions_per_level"
	CheckQuestionNumbers     = "question_number_sequence"
	CheckDifficultySequence  = "difficulty_sequence"
	CheckRoleDistribution    = "role_distribution"
	CheckResponseLengthCaps  = "response_length_caps"
	CheckLiteracyStageRanges = "literacy_stage_ranges"
	CheckUniqueObjectives    = "unique_objectives"
	CheckMonotonicScaffold   = "monotonic_scaffold"
	CheckDifficultyCeiling   = "difficulty_ceiling"
	CheckScaffoldConsistency = "scaffold_consistency"
)

// CheckNames lists every audit check in report order.
func CheckNames() []string {
	return []string{
		CheckModuleCount, CheckLevelsPerModule, CheckQuestionsPerLevel,
		CheckQuestionNumbers, CheckDifficultySequence, CheckRoleDistribution,
		CheckResponseLengthCaps, CheckLiteracyStageRanges, CheckUniqueObjectives,
		CheckMonotonicScaffold, CheckDifficultyCeiling, CheckScaffoldConsistency,
	}
}

// AuditReport is the result of a structural audit. Issues are collected,
// never thrown.
type AuditReport struct {
	Valid  bool            `json:"valid"`
	Checks map[string]bool `json:"checks"`
	Issues []string        `json:"issues"`
}

type auditor struct {
	report AuditReport
}

func (a *auditor) fail(check, format string, args ...any) {
	a.report.Checks[check] = false
	a.report.Issues = append(a.report.Issues, fmt.Sprintf("%s: %s", check, fmt.Sprintf(format, args...)))
}

// AuditCurriculum audits the shipped curriculum. It is meant to run once at
// startup; it does not cache its result.
func AuditCurriculum() AuditReport {
	return AuditCurriculumData(StandardizedLevels(), GenerateCurriculum())
}

// AuditCurriculumData runs every structural check over the given data.
func AuditCurriculumData(std []domain.StandardizedLevelDefinition, modules map[domain.ModuleID][]domain.ModuleLevelDefinition) AuditReport {
	a := &auditor{report: AuditReport{Checks: make(map[string]bool, len(CheckNames()))}}
	for _, name := range CheckNames() {
		a.report.Checks[name] = true
	}

	if len(modules) != len(domain.AllModules()) {
		a.fail(CheckModuleCount, "expected %d modules, got %d", len(domain.AllModules()), len(modules))
	}
	for _, id := range domain.AllModules() {
		if _, ok := modules[id]; !ok {
			a.fail(CheckModuleCount, "module %s missing", id)
		}
	}

	a.checkStandardized(std)

	for _, id := range domain.AllModules() {
		levels, ok := modules[id]
		if !ok {
			continue
		}
		a.checkModule(id, levels, std)
	}

	a.report.Valid = len(a.report.Issues) == 0
	return a.report
}

func (a *auditor) checkStandardized(std []domain.StandardizedLevelDefinition) {
	if len(std) != LevelCount {
		a.fail(CheckLevelsPerModule, "standardized table has %d levels, want %d", len(std), LevelCount)
	}
	for i, def := range std {
		first, last := def.LiteracyStage.LevelRange()
		if def.LevelNumber < first || def.LevelNumber > last {
			a.fail(CheckLiteracyStageRanges, "level %d declares stage %q covering %d-%d", def.LevelNumber, def.LiteracyStage, first, last)
		}
		if def.MaxSentenceLength > thirdGradeMaxSentence {
			a.fail(CheckDifficultyCeiling, "level %d max_sentence_length %d exceeds %d", def.LevelNumber, def.MaxSentenceLength, thirdGradeMaxSentence)
		}
		if def.VocabularySize > thirdGradeMaxVocabSize {
			a.fail(CheckDifficultyCeiling, "level %d vocabulary_size %d exceeds %d", def.LevelNumber, def.VocabularySize, thirdGradeMaxVocabSize)
		}
		if i == 0 {
			continue
		}
		prev := std[i-1]
		if def.MaxSentenceLength < prev.MaxSentenceLength {
			a.fail(CheckMonotonicScaffold, "level %d max_sentence_length %d < level %d's %d", def.LevelNumber, def.MaxSentenceLength, prev.LevelNumber, prev.MaxSentenceLength)
		}
		if def.VocabularySize < prev.VocabularySize {
			a.fail(CheckMonotonicScaffold, "level %d vocabulary_size %d < level %d's %d", def.LevelNumber, def.VocabularySize, prev.LevelNumber, prev.VocabularySize)
		}
	}
}

func (a *auditor) checkModule(id domain.ModuleID, levels []domain.ModuleLevelDefinition, std []domain.StandardizedLevelDefinition) {
	if len(levels) != LevelCount {
		a.fail(CheckLevelsPerModule, "module %s has %d levels, want %d", id, len(levels), LevelCount)
	}

	for i, lvl := range levels {
		if lvl.LevelNumber != i+1 {
			a.fail(CheckLevelsPerModule, "module %s position %d holds level %d", id, i+1, lvl.LevelNumber)
		}
		a.checkQuestions(id, lvl)

		if lvl.LevelNumber >= 1 && lvl.LevelNumber <= len(std) {
			if !reflect.DeepEqual(lvl.StandardizedLevelDefinition, std[lvl.LevelNumber-1]) {
				a.fail(CheckScaffoldConsistency, "module %s level %d scaffold differs from the standardized level", id, lvl.LevelNumber)
			}
		}
	}

	objectives := lo.Map(levels, func(l domain.ModuleLevelDefinition, _ int) string { return l.LevelObjective })
	for _, dup := range lo.FindDuplicates(objectives) {
		a.fail(CheckUniqueObjectives, "module %s repeats objective %q", id, dup)
	}
}

func (a *auditor) checkQuestions(id domain.ModuleID, lvl domain.ModuleLevelDefinition) {
	qs := lvl.Questions
	if len(qs) != QuestionsPerLevel {
		a.fail(CheckQuestionsPerLevel, "module %s level %d has %d questions", id, lvl.LevelNumber, len(qs))
	}

	for i, q := range qs {
		if q.QuestionNumber != i+1 {
			a.fail(CheckQuestionNumbers, "module %s level %d position %d has question_number %d", id, lvl.LevelNumber, i+1, q.QuestionNumber)
		}
		if q.DifficultyStep != q.QuestionNumber {
			a.fail(CheckDifficultySequence, "module %s level %d question %d has difficulty_step %d", id, lvl.LevelNumber, q.QuestionNumber, q.DifficultyStep)
		}
		if lvl.LevelNumber >= 1 && lvl.LevelNumber <= LevelCount {
			capLen := BandResponseCap(lvl.LevelNumber)
			if q.MaxResponseLength < 1 || q.MaxResponseLength > capLen || q.MaxResponseLength > lvl.MaxSentenceLength {
				a.fail(CheckResponseLengthCaps, "module %s level %d question %d max_response_length %d outside 1..min(%d,%d)",
					id, lvl.LevelNumber, q.QuestionNumber, q.MaxResponseLength, capLen, lvl.MaxSentenceLength)
			}
		}
	}

	countRole := func(role domain.QuestionRole) int {
		return lo.CountBy(qs, func(q domain.CurriculumLevelQuestion) bool { return q.QuestionRole == role })
	}
	core, reinf := countRole(domain.RoleCoreSkill), countRole(domain.RoleReinforcement)
	app, chal := countRole(domain.RoleApplication), countRole(domain.RoleChallenge)
	if core < 3 || core > 4 || reinf < 2 || reinf > 3 || app != 2 || chal != 1 {
		a.fail(CheckRoleDistribution, "module %s level %d roles core=%d reinforcement=%d application=%d challenge=%d",
			id, lvl.LevelNumber, core, reinf, app, chal)
	}
}
