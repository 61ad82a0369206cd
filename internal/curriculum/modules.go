package curriculum

import (
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

type moduleKind int

const (
	kindGeneral moduleKind = iota
	kindWriting
	kindDetective
	kindSequencing
	kindTimed
)

type moduleProfile struct {
	title      string
	kind       moduleKind
	signature  domain.InteractionType
	vocabTheme string
	// objectives holds one base objective per band.
	objectives [5]string
}

var moduleProfiles = map[domain.ModuleID]moduleProfile{
	domain.ModuleSentenceBuilder: {
		title:      "Sentence Builder",
		kind:       kindWriting,
		signature:  domain.InteractionSlotBuild,
		vocabTheme: "sentence-frames",
		objectives: [5]string{
			"Build a three-word sentence from picture cards",
			"Build a sentence where the doer and action match",
			"Build a sentence with a describing word",
			"Build and join two sentences with and or but",
			"Build sentences that tell a short story",
		},
	},
	domain.ModuleVocabularyBuilder: {
		title:      "Word Explorer",
		kind:       kindGeneral,
		signature:  domain.InteractionWordSelect,
		vocabTheme: "everyday-words",
		objectives: [5]string{
			"Match everyday words to pictures",
			"Choose the right word for a picture sentence",
			"Pick words that mean the same or the opposite",
			"Choose precise words to replace plain ones",
			"Use new topic words in your own sentences",
		},
	},
	domain.ModulePictureTalk: {
		title:      "Picture Talk",
		kind:       kindWriting,
		signature:  domain.InteractionPictureDescribe,
		vocabTheme: "scenes",
		objectives: [5]string{
			"Name what you see in a picture",
			"Say what is happening in a picture",
			"Describe a picture with colour and size words",
			"Compare two pictures in full sentences",
			"Write a short paragraph about a picture",
		},
	},
	domain.ModuleStorySequencing: {
		title:      "Story Steps",
		kind:       kindSequencing,
		signature:  domain.InteractionSequencing,
		vocabTheme: "story-words",
		objectives: [5]string{
			"Put two picture steps in order",
			"Order three story pictures with first and next",
			"Retell a story in the right order",
			"Use time words to link story events",
			"Sequence and retell a story with a beginning, middle, and end",
		},
	},
	domain.ModuleGrammarDetective: {
		title:      "Grammar Detective",
		kind:       kindDetective,
		signature:  domain.InteractionErrorDetection,
		vocabTheme: "mistake-clues",
		objectives: [5]string{
			"Spot the picture that does not match the word",
			"Find the missing capital letter or period",
			"Find the verb that does not match",
			"Find and fix mixed-up sentence parts",
			"Find and fix mistakes in a paragraph",
		},
	},
	domain.ModuleReadingComprehension: {
		title:      "Read and Think",
		kind:       kindGeneral,
		signature:  domain.InteractionReadAndAnswer,
		vocabTheme: "reading-passages",
		objectives: [5]string{
			"Listen and point to the matching picture",
			"Read a sentence and answer who or what",
			"Read a short text and answer where and when",
			"Read a passage and explain why",
			"Read a passage and find the main idea",
		},
	},
	domain.ModuleWritingWorkshop: {
		title:      "Writing Workshop",
		kind:       kindWriting,
		signature:  domain.InteractionSentenceExpansion,
		vocabTheme: "writing-prompts",
		objectives: [5]string{
			"Trace and copy a simple sentence",
			"Finish a sentence starter",
			"Grow a sentence with where and when",
			"Write an opinion sentence with a reason",
			"Plan and write a short paragraph",
		},
	},
	domain.ModuleFluencySprint: {
		title:      "Fluency Sprint",
		kind:       kindTimed,
		signature:  domain.InteractionTimedReading,
		vocabTheme: "sight-words",
		objectives: [5]string{
			"Read sight words quickly",
			"Read short sentences smoothly",
			"Read a short text with expression",
			"Read a passage at a steady pace",
			"Read a longer passage accurately and on time",
		},
	},
}

// Focus phrases distinguish the four levels inside a band so objectives stay
// unique within a module.
var bandFocus = [5][levelsPerBand]string{
	{"with picture cards", "with sound clues", "with a word bank", "on your own"},
	{"with a model sentence", "with a word bank", "with a partner prompt", "on your own"},
	{"with a sentence frame", "with a checklist", "with a short text", "on your own"},
	{"with a planning map", "with a checklist", "with a peer review", "on your own"},
	{"with a planning map", "with a revision checklist", "with a timed draft", "on your own"},
}

var bandVocabDomains = [5][levelsPerBand]string{
	{"animals", "colors", "family", "food"},
	{"school", "home", "toys", "weather"},
	{"community", "nature", "sports", "feelings"},
	{"science", "travel", "seasons", "jobs"},
	{"history", "space", "environment", "inventions"},
}

// bandResponseLength is the (min, cap) word count of answers in each band.
var bandResponseLength = [5][2]int{{1, 3}, {3, 6}, {5, 8}, {7, 11}, {9, 15}}

var fluencyTimeTargets = [LevelCount]int{12, 15, 18, 22, 26, 30, 35, 40, 46, 52, 58, 65, 72, 80, 88, 96, 105, 115, 127, 140}

func mustModule(id domain.ModuleID) moduleProfile {
	p, ok := moduleProfiles[id]
	if !ok {
		panic(fmt.Sprintf("curriculum: unknown module %q", id))
	}
	return p
}

// ModuleTitle returns the display title of a module.
func ModuleTitle(id domain.ModuleID) string {
	return mustModule(id).title
}

// FluencyTimeTarget returns the reading time target in seconds for level.
func FluencyTimeTarget(level int) int {
	mustLevel(level)
	return fluencyTimeTargets[level-1]
}

// BandResponseCap is the longest answer any question in level's band may ask for.
func BandResponseCap(level int) int {
	mustLevel(level)
	band, _ := bandOf(level)
	return bandResponseLength[band][1]
}
