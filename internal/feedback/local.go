package feedback

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// cueSet holds the signal words that show a sentence doing its language
// function.
type cueSet struct {
	words   []string
	purpose string
}

var functionCues = map[LanguageFunction]cueSet{
	FunctionDescribe:    {words: []string{"is", "are", "has", "have", "looks"}, purpose: "tell what something is like"},
	FunctionRetell:      {words: []string{"first", "then", "next", "after", "finally"}, purpose: "show what happened"},
	FunctionCompare:     {words: []string{"but", "both", "than", "while", "same"}, purpose: "compare two things"},
	FunctionExplain:     {words: []string{"because", "so", "when"}, purpose: "give a reason"},
	FunctionOpinion:     {words: []string{"i think", "i like", "i feel", "my favorite", "because"}, purpose: "share what you think"},
	FunctionSequence:    {words: []string{"first", "next", "then", "last", "finally"}, purpose: "put steps in order"},
	FunctionCauseEffect: {words: []string{"because", "so", "since", "as a result"}, purpose: "link a cause to what it made happen"},
}

const (
	capitalPenalty     = 15
	punctuationPenalty = 15
	cuePenalty         = 20
	lengthPenalty      = 10
	missingPairPenalty = 20
	minWords           = 3
)

// Local scores req with fixed rules. It needs no network and returns the
// same Response for the same Request.
func Local(req Request) Response {
	sentences := req.Sentences()
	if len(sentences) == 0 {
		return Response{
			Score:         0,
			Summary:       "Write a sentence to get feedback.",
			Suggestions:   []string{"Start with who or what your sentence is about."},
			Encouragement: encouragementFor(0),
			Source:        SourceLocal,
		}
	}

	score := 100
	var strengths, suggestions []string
	add := func(list *[]string, msg string) {
		for _, have := range *list {
			if have == msg {
				return
			}
		}
		*list = append(*list, msg)
	}

	for _, s := range sentences {
		if startsWithCapital(s) {
			add(&strengths, "You started with a capital letter.")
		} else {
			score -= capitalPenalty
			add(&suggestions, "Start every sentence with a capital letter.")
		}
		if endsWithPunctuation(s) {
			add(&strengths, "You ended with punctuation.")
		} else {
			score -= punctuationPenalty
			add(&suggestions, "End every sentence with a period, question mark, or exclamation mark.")
		}

		n := len(strings.Fields(s))
		switch {
		case n < minWords:
			score -= lengthPenalty
			add(&suggestions, "Add more detail to make your sentence longer.")
		case req.TierContext.MaxSentenceLength > 0 && n > req.TierContext.MaxSentenceLength:
			score -= lengthPenalty
			add(&suggestions, fmt.Sprintf("Try to say it in %d words or fewer.", req.TierContext.MaxSentenceLength))
		}
	}

	if cues, ok := functionCues[req.LanguageFunction]; ok {
		if found := firstCue(strings.Join(sentences, " "), cues.words); found != "" {
			add(&strengths, fmt.Sprintf("You used %q to %s.", found, cues.purpose))
		} else {
			score -= cuePenalty
			add(&suggestions, fmt.Sprintf("Try words like %q or %q to %s.", cues.words[0], cues.words[1], cues.purpose))
		}
	}

	if req.FeedbackMode == ModeCompare && len(sentences) < 2 {
		score -= missingPairPenalty
		add(&suggestions, "Write a second sentence to compare with the first.")
	}

	score = clampScore(score)
	return Response{
		Score:             score,
		Summary:           summaryFor(score, req.Topic),
		Strengths:         strengths,
		Suggestions:       suggestions,
		CorrectedSentence: tidy(sentences[0]),
		Encouragement:     encouragementFor(score),
		Source:            SourceLocal,
	}
}

func startsWithCapital(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func endsWithPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// firstCue returns the first cue, in list order, that appears in text as
// whole words.
func firstCue(text string, cues []string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	padded := " " + strings.Join(words, " ") + " "
	for _, c := range cues {
		if strings.Contains(padded, " "+c+" ") {
			return c
		}
	}
	return ""
}

// tidy collapses spaces, capitalises the first letter and adds a final
// period when the sentence has no end punctuation.
func tidy(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	s = string(runes)
	if !endsWithPunctuation(s) {
		s += "."
	}
	return s
}

func summaryFor(score int, topic string) string {
	about := ""
	if topic != "" {
		about = " about " + topic
	}
	switch {
	case score >= 85:
		return "Excellent writing" + about + "!"
	case score >= 60:
		return "Good work" + about + ", with a few things to fix."
	default:
		return "Nice try" + about + ". Let's make it stronger together."
	}
}

func encouragementFor(score int) string {
	switch {
	case score >= 85:
		return "You're a super writer!"
	case score >= 60:
		return "Keep going, you're getting better every time!"
	default:
		return "Every great writer practises. Try again!"
	}
}
