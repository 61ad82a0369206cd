// Package curriculum defines the 20-level scaffold shared by every learning
// module, derives per-module question sets from it, and audits the result.
package curriculum

import (
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

const (
	LevelCount             = 20
	QuestionsPerLevel      = 10
	MinCorrectToPass       = 8
	levelsPerBand          = 4
	thirdGradeMaxSentence  = 15
	thirdGradeMaxVocabSize = 1000
)

var (
	maxSentenceLengths = [LevelCount]int{3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 10, 10, 11, 12, 13, 14, 15}
	vocabularySizes    = [LevelCount]int{20, 30, 40, 50, 70, 90, 110, 130, 160, 190, 220, 250, 300, 350, 400, 450, 520, 600, 700, 800}
)

type stageProfile struct {
	stage          domain.LiteracyStage
	scaffolding    domain.ScaffoldingLevel
	grammarTargets []string
	sentenceTypes  []domain.SentenceType
	newErrorTypes  []domain.CurriculumErrorType
}

// Error types accumulate: a stage includes its own plus every earlier
// stage's, in order.
var stageProfiles = [5]stageProfile{
	{
		stage:          domain.StageEmergent,
		scaffolding:    domain.ScaffoldFull,
		grammarTargets: []string{"naming words", "action words", "a and an"},
		sentenceTypes:  []domain.SentenceType{domain.SentenceLabel, domain.SentenceSimple},
		newErrorTypes:  []domain.CurriculumErrorType{domain.CurrMissingComponent, domain.CurrVocabularyChoice},
	},
	{
		stage:          domain.StageEarly,
		scaffolding:    domain.ScaffoldHigh,
		grammarTargets: []string{"subject-verb agreement", "describing words", "capital letters and periods"},
		sentenceTypes:  []domain.SentenceType{domain.SentenceSimple, domain.SentenceQuestion},
		newErrorTypes:  []domain.CurriculumErrorType{domain.CurrSubjectVerbAgreement, domain.CurrArticleUsage, domain.CurrCapitalization, domain.CurrPunctuation},
	},
	{
		stage:          domain.StageDeveloping,
		scaffolding:    domain.ScaffoldModerate,
		grammarTargets: []string{"past and present tense", "plural nouns", "word order in questions"},
		sentenceTypes:  []domain.SentenceType{domain.SentenceSimple, domain.SentenceQuestion, domain.SentenceCompound},
		newErrorTypes:  []domain.CurriculumErrorType{domain.CurrWordOrder, domain.CurrVerbTense, domain.CurrPluralForm},
	},
	{
		stage:          domain.StageTransitional,
		scaffolding:    domain.ScaffoldLight,
		grammarTargets: []string{"joining words", "pronouns", "sentences that make sense"},
		sentenceTypes:  []domain.SentenceType{domain.SentenceSimple, domain.SentenceCompound, domain.SentenceComplex},
		newErrorTypes:  []domain.CurriculumErrorType{domain.CurrLogicMismatch, domain.CurrConjunctionUse, domain.CurrPronounReference},
	},
	{
		stage:          domain.StageFluent,
		scaffolding:    domain.ScaffoldMinimal,
		grammarTargets: []string{"paragraph order", "because and so", "spelling in context"},
		sentenceTypes:  []domain.SentenceType{domain.SentenceCompound, domain.SentenceComplex, domain.SentenceParagraph},
		newErrorTypes:  []domain.CurriculumErrorType{domain.CurrSequenceOrder, domain.CurrSpelling, domain.CurrDetailRecall},
	},
}

// bandOf returns the zero-based band (1-4 -> 0, ..., 17-20 -> 4) and the
// zero-based position of level within it.
func bandOf(level int) (band, position int) {
	return (level - 1) / levelsPerBand, (level - 1) % levelsPerBand
}

// mustLevel panics on an out-of-range level; callers clamp before asking.
func mustLevel(level int) {
	if level < 1 || level > LevelCount {
		panic(fmt.Sprintf("curriculum: level %d out of range 1..%d", level, LevelCount))
	}
}

func errorTypesThrough(band int) []domain.CurriculumErrorType {
	var out []domain.CurriculumErrorType
	for i := 0; i <= band; i++ {
		out = append(out, stageProfiles[i].newErrorTypes...)
	}
	return out
}

func difficultyProgression() []int {
	out := make([]int, QuestionsPerLevel)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// StandardizedLevel returns the scaffold for level. It panics when level is
// outside 1..20.
func StandardizedLevel(level int) domain.StandardizedLevelDefinition {
	mustLevel(level)
	band, _ := bandOf(level)
	p := stageProfiles[band]

	accuracy := 0.8
	if level <= 8 {
		accuracy = 0.75
	}
	repetition := 1
	switch {
	case level <= 8:
		repetition = 3
	case level <= 16:
		repetition = 2
	}

	return domain.StandardizedLevelDefinition{
		LevelNumber:                   level,
		LiteracyStage:                 p.stage,
		MaxSentenceLength:             maxSentenceLengths[level-1],
		GrammarTargets:                append([]string(nil), p.grammarTargets...),
		VocabularySize:                vocabularySizes[level-1],
		AllowedSentenceTypes:          append([]domain.SentenceType(nil), p.sentenceTypes...),
		ErrorTypesIncluded:            errorTypesThrough(band),
		ScaffoldingLevel:              p.scaffolding,
		RequiredAccuracyToPass:        accuracy,
		RepetitionRequirement:         repetition,
		TotalQuestionsPerLevel:        QuestionsPerLevel,
		MinCorrectToPass:              MinCorrectToPass,
		QuestionDifficultyProgression: difficultyProgression(),
		ReshuffleEnabled:              level >= 3,
	}
}

// StandardizedLevels returns all 20 scaffolds in level order.
func StandardizedLevels() []domain.StandardizedLevelDefinition {
	out := make([]domain.StandardizedLevelDefinition, LevelCount)
	for i := range out {
		out[i] = StandardizedLevel(i + 1)
	}
	return out
}
