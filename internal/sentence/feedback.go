package sentence

import (
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

var slotNames = map[domain.SlotType]string{
	domain.SlotArticle:     "article",
	domain.SlotSubject:     "who or what",
	domain.SlotVerb:        "action word",
	domain.SlotObject:      "object",
	domain.SlotDescriptor:  "describing word",
	domain.SlotLinkingVerb: "is/are word",
}

// SlotLabel is the child-facing name of a slot.
func SlotLabel(slot domain.SlotType) string {
	if name, ok := slotNames[slot]; ok {
		return name
	}
	return string(slot)
}

func failure(tag domain.ErrorTag, sentence string, slot domain.SlotType) domain.ValidationResult {
	t := tag
	return domain.ValidationResult{
		IsCorrect:          false,
		ErrorType:          &t,
		NormalizedSentence: sentence,
		Feedback:           FeedbackFor(tag, slot),
	}
}

// FeedbackFor returns the message shown for a failed rule. slot names the
// position the rule tripped on.
func FeedbackFor(tag domain.ErrorTag, slot domain.SlotType) domain.Feedback {
	switch tag {
	case domain.ErrMissingComponent:
		return domain.Feedback{
			Title:   "Almost there!",
			Message: fmt.Sprintf("Your sentence needs a %s.", SlotLabel(slot)),
			Hint:    "Fill every box before you check.",
		}
	case domain.ErrWordOrder:
		return domain.Feedback{
			Title:   "Mixed up!",
			Message: "The words are not in the right order.",
			Hint:    "Start with who or what the sentence is about.",
		}
	case domain.ErrSubjectVerbAgreement:
		return domain.Feedback{
			Title:   "Check the match",
			Message: "One thing and many things use different action words.",
			Hint:    "One cat runs. Two cats run.",
		}
	case domain.ErrLogicMismatch:
		if slot == domain.SlotArticle {
			return domain.Feedback{
				Title:   "Check a or an",
				Message: "Use \"an\" before a vowel sound and \"a\" before other sounds.",
				Hint:    "a dog, an owl",
			}
		}
		return domain.Feedback{
			Title:   "Does that make sense?",
			Message: fmt.Sprintf("That %s does not fit with the rest of the sentence.", SlotLabel(slot)),
			Hint:    "Picture the sentence in your head. Could it really happen?",
		}
	default:
		panic("sentence: unhandled error tag " + string(tag))
	}
}

func successFeedback(sentence string) domain.Feedback {
	return domain.Feedback{
		Title:   "Great job!",
		Message: fmt.Sprintf("\"%s\" is a complete sentence.", sentence),
		Hint:    "Try building another one.",
	}
}
