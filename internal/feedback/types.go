// Package feedback scores free-form learner sentences, remotely when a
// feedback service is configured and with local rules otherwise.
package feedback

import "strings"

// LanguageFunction is what a sentence is meant to do.
type LanguageFunction string

const (
	FunctionDescribe    LanguageFunction = "describe"
	FunctionRetell      LanguageFunction = "retell"
	FunctionCompare     LanguageFunction = "compare"
	FunctionExplain     LanguageFunction = "explain"
	FunctionOpinion     LanguageFunction = "opinion"
	FunctionSequence    LanguageFunction = "sequence"
	FunctionCauseEffect LanguageFunction = "cause_effect"
)

func AllLanguageFunctions() []LanguageFunction {
	return []LanguageFunction{
		FunctionDescribe, FunctionRetell, FunctionCompare, FunctionExplain,
		FunctionOpinion, FunctionSequence, FunctionCauseEffect,
	}
}

func (f LanguageFunction) Valid() bool {
	for _, v := range AllLanguageFunctions() {
		if v == f {
			return true
		}
	}
	return false
}

// Mode says whether one sentence or a pair is being scored.
type Mode string

const (
	ModeSingle  Mode = "single"
	ModeCompare Mode = "compare"
)

// TierContext tells the scorer what the learner's level expects.
type TierContext struct {
	Level             int    `json:"level"`
	LiteracyStage     string `json:"literacyStage"`
	MaxSentenceLength int    `json:"maxSentenceLength"`
}

// Request is the JSON body posted to the feedback service.
type Request struct {
	Sentence1        string           `json:"sentence1,omitempty"`
	Sentence2        string           `json:"sentence2,omitempty"`
	Sentence         string           `json:"sentence,omitempty"`
	FeedbackMode     Mode             `json:"feedbackMode"`
	TierContext      TierContext      `json:"tierContext"`
	Topic            string           `json:"topic"`
	LanguageFunction LanguageFunction `json:"languageFunction"`
}

// Sentences returns the non-blank sentences of r in order.
func (r Request) Sentences() []string {
	var out []string
	for _, s := range []string{r.Sentence, r.Sentence1, r.Sentence2} {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Source records who produced a Response.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Response is the feedback shown to the learner. Score is 0..100.
type Response struct {
	Score             int      `json:"score"`
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	Suggestions       []string `json:"suggestions"`
	CorrectedSentence string   `json:"correctedSentence,omitempty"`
	Encouragement     string   `json:"encouragement"`
	Source            Source   `json:"source"`
}
