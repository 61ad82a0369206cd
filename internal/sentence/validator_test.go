package sentence

import (
	"testing"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(n domain.GrammaticalNumber) *domain.GrammaticalNumber { return &n }

func word(id, text string, pos domain.PartOfSpeech, tags ...string) domain.WordEntry {
	return domain.WordEntry{ID: id, Text: text, PartOfSpeech: pos, SemanticTags: tags}
}

func animalTask() domain.LevelTask {
	return domain.LevelTask{
		ID:    "t-animals",
		Slots: []domain.SlotType{domain.SlotArticle, domain.SlotSubject, domain.SlotVerb, domain.SlotObject},
		Logic: domain.LogicRules{
			SubjectToVerb: domain.CompatibilityTable{"animal": {"animal-action"}},
			VerbToObject:  domain.CompatibilityTable{"eating": {"food"}},
		},
	}
}

func TestValidate_AgreementMismatch(t *testing.T) {
	task := domain.LevelTask{Slots: []domain.SlotType{domain.SlotSubject, domain.SlotVerb}}
	subject := word("s", "cat", domain.PosNoun)
	subject.Number = num(domain.Singular)
	verb := word("v", "run", domain.PosVerb)
	verb.Agreement = num(domain.Plural)

	res := Validate(task, domain.Selection{domain.SlotSubject: subject, domain.SlotVerb: verb})

	assert.False(t, res.IsCorrect)
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrSubjectVerbAgreement, *res.ErrorType)
}

func TestValidate_AnBeforeConsonant(t *testing.T) {
	task := domain.LevelTask{Slots: []domain.SlotType{domain.SlotArticle, domain.SlotSubject}}
	res := Validate(task, domain.Selection{
		domain.SlotArticle: word("a", "an", domain.PosArticle),
		domain.SlotSubject: word("s", "dog", domain.PosNoun),
	})

	assert.False(t, res.IsCorrect)
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrLogicMismatch, *res.ErrorType)
	assert.Equal(t, "Check a or an", res.Feedback.Title)
}

func TestValidate_ABeforeVowel(t *testing.T) {
	task := domain.LevelTask{Slots: []domain.SlotType{domain.SlotArticle, domain.SlotSubject}}
	res := Validate(task, domain.Selection{
		domain.SlotArticle: word("a", "a", domain.PosArticle),
		domain.SlotSubject: word("s", "owl", domain.PosNoun),
	})
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrLogicMismatch, *res.ErrorType)
}

func TestValidate_SuccessNormalizesSentence(t *testing.T) {
	task := animalTask()
	res := Validate(task, domain.Selection{
		domain.SlotArticle: word("a", "the", domain.PosArticle),
		domain.SlotSubject: word("s", "dog", domain.PosNoun, "animal"),
		domain.SlotVerb:    word("v", "eats", domain.PosVerb, "eating", "animal-action"),
		domain.SlotObject:  word("o", "bones", domain.PosNoun, "food"),
	})

	assert.True(t, res.IsCorrect)
	assert.Nil(t, res.ErrorType)
	assert.Equal(t, "The dog eats bones.", res.NormalizedSentence)
	assert.Equal(t, "Great job!", res.Feedback.Title)
}

func TestValidate_MissingSlotWinsOverEveryOtherRule(t *testing.T) {
	task := animalTask()
	// Every other rule would fail too: "an" before a consonant, a verb the
	// subject cannot do, an object the verb cannot take.
	full := domain.Selection{
		domain.SlotArticle: word("a", "an", domain.PosArticle),
		domain.SlotSubject: word("s", "dog", domain.PosNoun, "animal"),
		domain.SlotVerb:    word("v", "reads", domain.PosVerb, "reading"),
		domain.SlotObject:  word("o", "rocks", domain.PosNoun, "stone"),
	}
	for _, missing := range task.Slots {
		sel := domain.Selection{}
		for slot, w := range full {
			if slot != missing {
				sel[slot] = w
			}
		}
		res := Validate(task, sel)
		require.NotNil(t, res.ErrorType, "missing %s", missing)
		assert.Equal(t, domain.ErrMissingComponent, *res.ErrorType, "missing %s", missing)
	}
}

func TestValidate_AgreementCheckedBeforeLogic(t *testing.T) {
	task := animalTask()
	subject := word("s", "dog", domain.PosNoun, "animal")
	subject.Number = num(domain.Singular)
	verb := word("v", "read", domain.PosVerb, "reading")
	verb.Agreement = num(domain.Plural)

	res := Validate(task, domain.Selection{
		domain.SlotArticle: word("a", "a", domain.PosArticle),
		domain.SlotSubject: subject,
		domain.SlotVerb:    verb,
		domain.SlotObject:  word("o", "bones", domain.PosNoun, "food"),
	})
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrSubjectVerbAgreement, *res.ErrorType)
}

func TestValidate_LinkingVerbAgreement(t *testing.T) {
	task := domain.LevelTask{Slots: []domain.SlotType{domain.SlotSubject, domain.SlotLinkingVerb, domain.SlotDescriptor}}
	subject := word("s", "Kids", domain.PosNoun, "person")
	subject.Number = num(domain.Plural)
	is := word("lv", "is", domain.PosVerb, "state")
	is.Agreement = num(domain.Singular)

	res := Validate(task, domain.Selection{
		domain.SlotSubject:     subject,
		domain.SlotLinkingVerb: is,
		domain.SlotDescriptor:  word("d", "happy", domain.PosAdjective, "feeling"),
	})
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrSubjectVerbAgreement, *res.ErrorType)
}

func TestValidate_UntaggedWordsSkipAgreement(t *testing.T) {
	task := domain.LevelTask{Slots: []domain.SlotType{domain.SlotSubject, domain.SlotVerb}}
	verb := word("v", "run", domain.PosVerb)
	verb.Agreement = num(domain.Plural)

	res := Validate(task, domain.Selection{
		domain.SlotSubject: word("s", "it", domain.PosNoun),
		domain.SlotVerb:    verb,
	})
	assert.True(t, res.IsCorrect)
}

func TestValidate_OnlyPrimaryTagIsLookupKey(t *testing.T) {
	task := domain.LevelTask{
		Slots: []domain.SlotType{domain.SlotSubject, domain.SlotVerb},
		Logic: domain.LogicRules{SubjectToVerb: domain.CompatibilityTable{
			"animal": {"animal-action"},
			"bird":   {"bird-action"},
		}},
	}
	// Primary tag "bird" governs even though "animal" is also present.
	res := Validate(task, domain.Selection{
		domain.SlotSubject: word("s", "owl", domain.PosNoun, "bird", "animal"),
		domain.SlotVerb:    word("v", "runs", domain.PosVerb, "animal-action"),
	})
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrLogicMismatch, *res.ErrorType)
}

func TestValidate_UnknownTagIsUnrestricted(t *testing.T) {
	task := animalTask()
	res := Validate(task, domain.Selection{
		domain.SlotArticle: word("a", "a", domain.PosArticle),
		domain.SlotSubject: word("s", "robot", domain.PosNoun, "machine"),
		domain.SlotVerb:    word("v", "eats", domain.PosVerb, "eating"),
		domain.SlotObject:  word("o", "soup", domain.PosNoun, "food"),
	})
	assert.True(t, res.IsCorrect)
	assert.Equal(t, "A robot eats soup.", res.NormalizedSentence)
}

func TestValidate_DescriptorCompatibility(t *testing.T) {
	task := domain.LevelTask{
		Slots: []domain.SlotType{domain.SlotSubject, domain.SlotLinkingVerb, domain.SlotDescriptor},
		Logic: domain.LogicRules{SubjectToDescriptor: domain.CompatibilityTable{"food": {"taste"}}},
	}
	res := Validate(task, domain.Selection{
		domain.SlotSubject:     word("s", "soup", domain.PosNoun, "food"),
		domain.SlotLinkingVerb: word("lv", "is", domain.PosVerb, "state"),
		domain.SlotDescriptor:  word("d", "sleepy", domain.PosAdjective, "feeling"),
	})
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrLogicMismatch, *res.ErrorType)
	assert.Contains(t, res.Feedback.Message, "describing word")
}

func TestValidate_ObjectCompatibility(t *testing.T) {
	task := animalTask()
	res := Validate(task, domain.Selection{
		domain.SlotArticle: word("a", "the", domain.PosArticle),
		domain.SlotSubject: word("s", "dog", domain.PosNoun, "animal"),
		domain.SlotVerb:    word("v", "eats", domain.PosVerb, "eating", "animal-action"),
		domain.SlotObject:  word("o", "books", domain.PosNoun, "reading"),
	})
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrLogicMismatch, *res.ErrorType)
}

func TestArticleAgrees(t *testing.T) {
	tests := []struct {
		article, next string
		want          bool
	}{
		{"a", "dog", true},
		{"an", "owl", true},
		{"A", "Elephant", false},
		{"an", "cat", false},
		{"the", "owl", true},
		// Spelling heuristic, not phonetics.
		{"a", "university", false},
		{"an", "hour", false},
		{"a", "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ArticleAgrees(tt.article, tt.next), "%s %s", tt.article, tt.next)
	}
}

func TestNormalize_SkipsUnfilledSlots(t *testing.T) {
	slots := []domain.SlotType{domain.SlotArticle, domain.SlotSubject, domain.SlotVerb}
	got := Normalize(slots, domain.Selection{domain.SlotSubject: word("s", "cat", domain.PosNoun)})
	assert.Equal(t, "Cat.", got)
	assert.Equal(t, "", Normalize(slots, domain.Selection{}))
}

func TestFeedbackFor_CoversEveryErrorTag(t *testing.T) {
	for _, tag := range domain.AllErrorTags() {
		fb := FeedbackFor(tag, domain.SlotSubject)
		assert.NotEmpty(t, fb.Title, tag)
		assert.NotEmpty(t, fb.Message, tag)
	}
}

// Every shipped task must have at least one selection the validator accepts,
// and every missing-slot selection must be reported as missing.
func TestShippedTasks_AreSolvable(t *testing.T) {
	for _, task := range leveldata.All() {
		solutions := 0
		var first string
		enumerate(task, 0, domain.Selection{}, func(sel domain.Selection) {
			if res := Validate(task, sel); res.IsCorrect {
				if solutions == 0 {
					first = res.NormalizedSentence
				}
				solutions++
			}
		})
		assert.Positive(t, solutions, "task %s has no valid sentence", task.ID)
		assert.NotEmpty(t, first, task.ID)

		res := Validate(task, domain.Selection{})
		require.NotNil(t, res.ErrorType, task.ID)
		assert.Equal(t, domain.ErrMissingComponent, *res.ErrorType, task.ID)
	}
}

func enumerate(task domain.LevelTask, i int, sel domain.Selection, visit func(domain.Selection)) {
	if i == len(task.Slots) {
		visit(sel)
		return
	}
	slot := task.Slots[i]
	for _, w := range task.OptionsFor(slot) {
		sel[slot] = w
		enumerate(task, i+1, sel, visit)
	}
	delete(sel, slot)
}
