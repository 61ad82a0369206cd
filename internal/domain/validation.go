package domain

// ErrorTag is an engine-level sentence error.
type ErrorTag string

const (
	ErrMissingComponent     ErrorTag = "missing_component"
	ErrWordOrder            ErrorTag = "word_order"
	ErrSubjectVerbAgreement ErrorTag = "subject_verb_agreement"
	ErrLogicMismatch        ErrorTag = "logic_mismatch"
)

// AllErrorTags lists every engine error tag. ErrWordOrder is reserved for
// modules that grade scrambled input; the slot validator never emits it.
func AllErrorTags() []ErrorTag {
	return []ErrorTag{ErrMissingComponent, ErrWordOrder, ErrSubjectVerbAgreement, ErrLogicMismatch}
}

// CurriculumType maps an engine tag into the curriculum error taxonomy.
func (e ErrorTag) CurriculumType() CurriculumErrorType {
	switch e {
	case ErrMissingComponent:
		return CurrMissingComponent
	case ErrWordOrder:
		return CurrWordOrder
	case ErrSubjectVerbAgreement:
		return CurrSubjectVerbAgreement
	case ErrLogicMismatch:
		return CurrLogicMismatch
	default:
		panic("domain: unknown error tag " + string(e))
	}
}

// CurriculumErrorType is the broader error taxonomy used for tagging
// curriculum questions and recorded results.
type CurriculumErrorType string

const (
	CurrMissingComponent     CurriculumErrorType = "missing_component"
	CurrWordOrder            CurriculumErrorType = "word_order"
	CurrSubjectVerbAgreement CurriculumErrorType = "subject_verb_agreement"
	CurrLogicMismatch        CurriculumErrorType = "logic_mismatch"
	CurrArticleUsage         CurriculumErrorType = "article_usage"
	CurrCapitalization       CurriculumErrorType = "capitalization"
	CurrPunctuation          CurriculumErrorType = "punctuation"
	CurrVerbTense            CurriculumErrorType = "verb_tense"
	CurrPluralForm           CurriculumErrorType = "plural_form"
	CurrPronounReference     CurriculumErrorType = "pronoun_reference"
	CurrSpelling             CurriculumErrorType = "spelling"
	CurrVocabularyChoice     CurriculumErrorType = "vocabulary_choice"
	CurrConjunctionUse       CurriculumErrorType = "conjunction_use"
	CurrSequenceOrder        CurriculumErrorType = "sequence_order"
	CurrDetailRecall         CurriculumErrorType = "detail_recall"
)

var validCurriculumErrorTypes = map[CurriculumErrorType]bool{
	CurrMissingComponent: true, CurrWordOrder: true, CurrSubjectVerbAgreement: true,
	CurrLogicMismatch: true, CurrArticleUsage: true, CurrCapitalization: true,
	CurrPunctuation: true, CurrVerbTense: true, CurrPluralForm: true,
	CurrPronounReference: true, CurrSpelling: true, CurrVocabularyChoice: true,
	CurrConjunctionUse: true, CurrSequenceOrder: true, CurrDetailRecall: true,
}

func (c CurriculumErrorType) Valid() bool {
	return validCurriculumErrorTypes[c]
}

type Feedback struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

// ValidationResult is the typed outcome of grading a slot selection.
// A failed check is data, not an error.
type ValidationResult struct {
	IsCorrect          bool      `json:"isCorrect"`
	ErrorType          *ErrorTag `json:"errorType"`
	NormalizedSentence string    `json:"normalizedSentence"`
	Feedback           Feedback  `json:"feedback"`
}
