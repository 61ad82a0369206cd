package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocal_CleanSentence(t *testing.T) {
	resp := Local(Request{
		Sentence:         "The cat is happy.",
		FeedbackMode:     ModeSingle,
		TierContext:      TierContext{Level: 4, MaxSentenceLength: 4},
		Topic:            "animals",
		LanguageFunction: FunctionDescribe,
	})
	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, SourceLocal, resp.Source)
	assert.Empty(t, resp.Suggestions)
	assert.Contains(t, resp.Strengths, `You used "is" to tell what something is like.`)
	assert.Equal(t, "Excellent writing about animals!", resp.Summary)
	assert.Equal(t, "The cat is happy.", resp.CorrectedSentence)
}

func TestLocal_MechanicsAndMissingCue(t *testing.T) {
	resp := Local(Request{
		Sentence:         "the   dog run fast",
		FeedbackMode:     ModeSingle,
		LanguageFunction: FunctionExplain,
	})
	assert.Equal(t, 50, resp.Score)
	assert.Equal(t, "The dog run fast.", resp.CorrectedSentence)
	assert.Contains(t, resp.Suggestions, "Start every sentence with a capital letter.")
	assert.Contains(t, resp.Suggestions, `Try words like "because" or "so" to give a reason.`)
	assert.Equal(t, "Nice try. Let's make it stronger together.", resp.Summary)
}

func TestLocal_TooLongForTier(t *testing.T) {
	resp := Local(Request{
		Sentence:         "I think my dog runs fast.",
		TierContext:      TierContext{MaxSentenceLength: 3},
		LanguageFunction: FunctionOpinion,
	})
	assert.Equal(t, 90, resp.Score)
	assert.Contains(t, resp.Suggestions, "Try to say it in 3 words or fewer.")
	assert.Contains(t, resp.Strengths, `You used "i think" to share what you think.`)
}

func TestLocal_CompareNeedsTwoSentences(t *testing.T) {
	resp := Local(Request{
		Sentence1:        "Cats are small.",
		FeedbackMode:     ModeCompare,
		LanguageFunction: FunctionCompare,
	})
	assert.Equal(t, 60, resp.Score)
	assert.Contains(t, resp.Suggestions, "Write a second sentence to compare with the first.")

	pair := Local(Request{
		Sentence1:        "Cats are small.",
		Sentence2:        "Dogs are bigger than cats.",
		FeedbackMode:     ModeCompare,
		LanguageFunction: FunctionCompare,
	})
	assert.Equal(t, 100, pair.Score)
}

func TestLocal_CueMatchesWholeWordsOnly(t *testing.T) {
	// "sofa" contains "so" but is not the connector.
	resp := Local(Request{Sentence: "The sofa was red.", LanguageFunction: FunctionCauseEffect})
	assert.Equal(t, 80, resp.Score)
}

func TestLocal_Empty(t *testing.T) {
	resp := Local(Request{Sentence: "   ", LanguageFunction: FunctionRetell})
	assert.Equal(t, 0, resp.Score)
	assert.Equal(t, SourceLocal, resp.Source)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestLocal_Deterministic(t *testing.T) {
	req := Request{Sentence: "first we ate then we played", LanguageFunction: FunctionSequence}
	assert.Equal(t, Local(req), Local(req))
}

func TestLanguageFunction_Valid(t *testing.T) {
	for _, f := range AllLanguageFunctions() {
		assert.True(t, f.Valid(), f)
		_, ok := functionCues[f]
		assert.True(t, ok, "no cues for %s", f)
	}
	assert.False(t, LanguageFunction("poem").Valid())
}
