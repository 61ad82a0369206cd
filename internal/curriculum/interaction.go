package curriculum

import (
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

// roleFor fixes the role layout of every level: four core questions, three
// reinforcement, two application, one challenge.
func roleFor(questionNumber int) domain.QuestionRole {
	switch {
	case questionNumber <= 4:
		return domain.RoleCoreSkill
	case questionNumber <= 7:
		return domain.RoleReinforcement
	case questionNumber <= 9:
		return domain.RoleApplication
	default:
		return domain.RoleChallenge
	}
}

// interactionFor is the decision table from (module, level, role) to the
// interaction a question uses.
func interactionFor(p moduleProfile, level int, role domain.QuestionRole) domain.InteractionType {
	band, _ := bandOf(level)
	detective := p.kind == kindDetective

	switch band {
	case 0:
		switch role {
		case domain.RoleCoreSkill, domain.RoleReinforcement:
			return domain.InteractionIconMatch
		case domain.RoleChallenge:
			if p.kind == kindTimed {
				return domain.InteractionTimedReading
			}
			return domain.InteractionWordSelect
		default:
			return domain.InteractionWordSelect
		}
	case 1:
		switch role {
		case domain.RoleCoreSkill:
			return domain.InteractionWordSelect
		case domain.RoleReinforcement:
			return domain.InteractionFillInBlank
		default:
			return p.signature
		}
	case 2:
		switch role {
		case domain.RoleCoreSkill:
			return domain.InteractionFillInBlank
		case domain.RoleChallenge:
			if detective {
				return domain.InteractionErrorDetection
			}
			return domain.InteractionSentenceExpansion
		default:
			return p.signature
		}
	case 3:
		switch role {
		case domain.RoleCoreSkill:
			return p.signature
		case domain.RoleReinforcement:
			return domain.InteractionSentenceExpansion
		case domain.RoleApplication:
			return domain.InteractionSentenceCombine
		default:
			if detective {
				return domain.InteractionErrorDetection
			}
			return domain.InteractionSentenceCombine
		}
	default:
		switch p.kind {
		case kindWriting:
			switch role {
			case domain.RoleCoreSkill:
				return domain.InteractionSentenceCombine
			case domain.RoleReinforcement:
				return domain.InteractionSequencing
			default:
				return domain.InteractionParagraphConstruction
			}
		case kindDetective:
			return domain.InteractionErrorDetection
		case kindSequencing:
			if role == domain.RoleChallenge {
				return domain.InteractionParagraphConstruction
			}
			return domain.InteractionSequencing
		default:
			switch role {
			case domain.RoleCoreSkill:
				return p.signature
			case domain.RoleChallenge:
				return domain.InteractionParagraphConstruction
			default:
				return domain.InteractionReadAndAnswer
			}
		}
	}
}

var promptTemplates = map[domain.InteractionType]string{
	domain.InteractionIconMatch:             "Tap the picture that matches the %s word.",
	domain.InteractionWordSelect:            "Choose the best %s word.",
	domain.InteractionPictureChoice:         "Pick the picture that shows the %s sentence.",
	domain.InteractionFillInBlank:           "Fill in the missing %s word.",
	domain.InteractionSlotBuild:             "Build a sentence about %s.",
	domain.InteractionPictureDescribe:       "Tell about the %s picture.",
	domain.InteractionSequencing:            "Put the %s story steps in order.",
	domain.InteractionErrorDetection:        "Find the mistake in the %s sentence.",
	domain.InteractionReadAndAnswer:         "Read about %s and answer the question.",
	domain.InteractionSentenceExpansion:     "Make the %s sentence longer.",
	domain.InteractionSentenceCombine:       "Join the two %s sentences into one.",
	domain.InteractionParagraphConstruction: "Write a few sentences about %s.",
	domain.InteractionTimedReading:          "Read the %s words before the timer ends.",
}

func promptFor(it domain.InteractionType, topic string) string {
	tmpl, ok := promptTemplates[it]
	if !ok {
		panic(fmt.Sprintf("curriculum: no prompt for interaction %q", it))
	}
	return fmt.Sprintf(tmpl, topic)
}

// errorTypeLimit is how many of the level's error types a role expects;
// -1 means all of them.
func errorTypeLimit(role domain.QuestionRole) int {
	switch role {
	case domain.RoleCoreSkill:
		return 2
	case domain.RoleReinforcement:
		return 3
	case domain.RoleApplication:
		return 4
	default:
		return -1
	}
}

func iconSupport(level int, role domain.QuestionRole) bool {
	switch band, _ := bandOf(level); band {
	case 0, 1:
		return true
	case 2:
		return role == domain.RoleCoreSkill
	default:
		return false
	}
}

func independentResponse(level int, role domain.QuestionRole) bool {
	switch band, _ := bandOf(level); band {
	case 0, 1:
		return false
	case 2:
		return role == domain.RoleApplication || role == domain.RoleChallenge
	default:
		return true
	}
}
