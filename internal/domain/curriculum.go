package domain

// ModuleID identifies one of the learning modules.
type ModuleID string

const (
	ModuleSentenceBuilder      ModuleID = "sentence_builder"
	ModuleVocabularyBuilder    ModuleID = "vocabulary_builder"
	ModulePictureTalk          ModuleID = "picture_talk"
	ModuleStorySequencing      ModuleID = "story_sequencing"
	ModuleGrammarDetective     ModuleID = "grammar_detective"
	ModuleReadingComprehension ModuleID = "reading_comprehension"
	ModuleWritingWorkshop      ModuleID = "writing_workshop"
	ModuleFluencySprint        ModuleID = "fluency_sprint"
)

// AllModules lists the modules in curriculum order.
func AllModules() []ModuleID {
	return []ModuleID{
		ModuleSentenceBuilder,
		ModuleVocabularyBuilder,
		ModulePictureTalk,
		ModuleStorySequencing,
		ModuleGrammarDetective,
		ModuleReadingComprehension,
		ModuleWritingWorkshop,
		ModuleFluencySprint,
	}
}

func (m ModuleID) Valid() bool {
	for _, id := range AllModules() {
		if id == m {
			return true
		}
	}
	return false
}

type LiteracyStage string

const (
	StageEmergent     LiteracyStage = "emergent"
	StageEarly        LiteracyStage = "early"
	StageDeveloping   LiteracyStage = "developing"
	StageTransitional LiteracyStage = "transitional"
	StageFluent       LiteracyStage = "fluent"
)

// LevelRange returns the declared inclusive level range of a stage.
func (s LiteracyStage) LevelRange() (lo, hi int) {
	switch s {
	case StageEmergent:
		return 1, 4
	case StageEarly:
		return 5, 8
	case StageDeveloping:
		return 9, 12
	case StageTransitional:
		return 13, 16
	case StageFluent:
		return 17, 20
	default:
		return 0, 0
	}
}

type ScaffoldingLevel string

const (
	ScaffoldFull     ScaffoldingLevel = "full"
	ScaffoldHigh     ScaffoldingLevel = "high"
	ScaffoldModerate ScaffoldingLevel = "moderate"
	ScaffoldLight    ScaffoldingLevel = "light"
	ScaffoldMinimal  ScaffoldingLevel = "minimal"
)

type SentenceType string

const (
	SentenceLabel     SentenceType = "label"
	SentenceSimple    SentenceType = "simple"
	SentenceQuestion  SentenceType = "question"
	SentenceCompound  SentenceType = "compound"
	SentenceComplex   SentenceType = "complex"
	SentenceParagraph SentenceType = "paragraph"
)

type QuestionRole string

const (
	RoleCoreSkill     QuestionRole = "core_skill"
	RoleReinforcement QuestionRole = "reinforcement"
	RoleApplication   QuestionRole = "application"
	RoleChallenge     QuestionRole = "challenge"
)

type InteractionType string

const (
	InteractionIconMatch             InteractionType = "icon_match"
	InteractionWordSelect            InteractionType = "word_select"
	InteractionPictureChoice         InteractionType = "picture_choice"
	InteractionFillInBlank           InteractionType = "fill_in_blank"
	InteractionSlotBuild             InteractionType = "slot_build"
	InteractionPictureDescribe       InteractionType = "picture_describe"
	InteractionSequencing            InteractionType = "sequencing"
	InteractionErrorDetection        InteractionType = "error_detection"
	InteractionReadAndAnswer         InteractionType = "read_and_answer"
	InteractionSentenceExpansion     InteractionType = "sentence_expansion"
	InteractionSentenceCombine       InteractionType = "sentence_combine"
	InteractionParagraphConstruction InteractionType = "paragraph_construction"
	InteractionTimedReading          InteractionType = "timed_reading"
)

// StandardizedLevelDefinition is the scaffold shared by every module at a
// given level number.
type StandardizedLevelDefinition struct {
	LevelNumber                   int                   `json:"level_number"`
	LiteracyStage                 LiteracyStage         `json:"literacy_stage"`
	MaxSentenceLength             int                   `json:"max_sentence_length"`
	GrammarTargets                []string              `json:"grammar_targets"`
	VocabularySize                int                   `json:"vocabulary_size"`
	AllowedSentenceTypes          []SentenceType        `json:"allowed_sentence_types"`
	ErrorTypesIncluded            []CurriculumErrorType `json:"error_types_included"`
	ScaffoldingLevel              ScaffoldingLevel      `json:"scaffolding_level"`
	RequiredAccuracyToPass        float64               `json:"required_accuracy_to_pass"`
	RepetitionRequirement         int                   `json:"repetition_requirement"`
	TotalQuestionsPerLevel        int                   `json:"total_questions_per_level"`
	MinCorrectToPass              int                   `json:"min_correct_to_pass"`
	QuestionDifficultyProgression []int                 `json:"question_difficulty_progression"`
	ReshuffleEnabled              bool                  `json:"reshuffle_enabled"`
}

// ModuleLevelDefinition is a standardized level specialised for one module.
type ModuleLevelDefinition struct {
	StandardizedLevelDefinition

	ModuleID                 ModuleID                  `json:"module_id"`
	LevelObjective           string                    `json:"level_objective"`
	RecommendedVocabDomains  []string                  `json:"recommended_vocab_domains"`
	Questions                []CurriculumLevelQuestion `json:"questions"`
	FluencyTimeTargetSeconds *int                      `json:"fluency_time_target_seconds,omitempty"`
}

type CurriculumLevelQuestion struct {
	QuestionID          string                `json:"question_id"`
	QuestionNumber      int                   `json:"question_number"`
	DifficultyStep      int                   `json:"difficulty_step"`
	QuestionRole        QuestionRole          `json:"question_role"`
	InteractionType     InteractionType       `json:"interaction_type"`
	Prompt              string                `json:"prompt"`
	MaxResponseLength   int                   `json:"max_response_length"`
	IconSupport         bool                  `json:"icon_support"`
	IndependentResponse bool                  `json:"independent_response"`
	ExpectedErrorTypes  []CurriculumErrorType `json:"expected_error_types"`
}
