package curriculum

import (
	"fmt"
	"math"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/samber/lo"
)

// GenerateModuleLevel derives the question set of one module level from the
// standardized scaffold. It is a pure function of static tables and panics on
// an unknown module or a level outside 1..20.
func GenerateModuleLevel(moduleID domain.ModuleID, level int) domain.ModuleLevelDefinition {
	p := mustModule(moduleID)
	std := StandardizedLevel(level)
	band, position := bandOf(level)

	def := domain.ModuleLevelDefinition{
		StandardizedLevelDefinition: std,
		ModuleID:                    moduleID,
		LevelObjective:              fmt.Sprintf("%s %s", p.objectives[band], bandFocus[band][position]),
		RecommendedVocabDomains: []string{
			bandVocabDomains[band][position],
			bandVocabDomains[band][(position+1)%levelsPerBand],
			p.vocabTheme,
		},
		Questions: make([]domain.CurriculumLevelQuestion, QuestionsPerLevel),
	}
	if p.kind == kindTimed {
		target := FluencyTimeTarget(level)
		def.FluencyTimeTargetSeconds = &target
	}

	topic := def.RecommendedVocabDomains[0]
	for i := range def.Questions {
		n := i + 1
		step := std.QuestionDifficultyProgression[i]
		role := roleFor(n)
		it := interactionFor(p, level, role)
		def.Questions[i] = domain.CurriculumLevelQuestion{
			QuestionID:          fmt.Sprintf("%s-l%02d-q%02d", moduleID, level, n),
			QuestionNumber:      n,
			DifficultyStep:      step,
			QuestionRole:        role,
			InteractionType:     it,
			Prompt:              promptFor(it, topic),
			MaxResponseLength:   responseLength(band, step, std.MaxSentenceLength),
			IconSupport:         iconSupport(level, role),
			IndependentResponse: independentResponse(level, role),
			ExpectedErrorTypes:  expectedErrorTypes(std.ErrorTypesIncluded, role),
		}
	}
	return def
}

// responseLength interpolates linearly from the band minimum at step 1 to the
// band cap at step 10, then clamps to the level's sentence length.
func responseLength(band, step, maxSentence int) int {
	minLen, capLen := bandResponseLength[band][0], bandResponseLength[band][1]
	frac := float64(step-1) / float64(QuestionsPerLevel-1)
	n := minLen + int(math.Round(float64(capLen-minLen)*frac))
	if n > maxSentence {
		n = maxSentence
	}
	return n
}

func expectedErrorTypes(included []domain.CurriculumErrorType, role domain.QuestionRole) []domain.CurriculumErrorType {
	limit := errorTypeLimit(role)
	if limit < 0 || limit > len(included) {
		limit = len(included)
	}
	return append([]domain.CurriculumErrorType(nil), included[:limit]...)
}

// GenerateModule returns all 20 levels of a module.
func GenerateModule(moduleID domain.ModuleID) []domain.ModuleLevelDefinition {
	return lo.Times(LevelCount, func(i int) domain.ModuleLevelDefinition {
		return GenerateModuleLevel(moduleID, i+1)
	})
}

// GenerateCurriculum returns every module's levels keyed by module.
func GenerateCurriculum() map[domain.ModuleID][]domain.ModuleLevelDefinition {
	out := make(map[domain.ModuleID][]domain.ModuleLevelDefinition, len(domain.AllModules()))
	for _, id := range domain.AllModules() {
		out[id] = GenerateModule(id)
	}
	return out
}

// NextLevel returns the level after (moduleID, level). Level 20 rolls over to
// level 1 of the next module; done is true after the last module's level 20.
func NextLevel(moduleID domain.ModuleID, level int) (next domain.ModuleID, nextLevel int, done bool) {
	mustModule(moduleID)
	mustLevel(level)
	if level < LevelCount {
		return moduleID, level + 1, false
	}
	modules := domain.AllModules()
	idx := lo.IndexOf(modules, moduleID)
	if idx == len(modules)-1 {
		return moduleID, level, true
	}
	return modules[idx+1], 1, false
}
