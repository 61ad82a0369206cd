// Package leveldata holds the hand-authored sentence-builder tasks. The data
// is static: every accessor returns fresh slices so callers cannot mutate the
// catalogue.
package leveldata

import (
	"sort"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

func bank(words ...domain.WordEntry) []domain.WordEntry {
	out := make([]domain.WordEntry, len(words))
	copy(out, words)
	return out
}

func catalog() []domain.LevelTask {
	animalVerbs := domain.CompatibilityTable{
		"animal":       {"animal-action"},
		"bird":         {"bird-action", "animal-action"},
		"water-animal": {"water-action"},
		"person":       {"person-action"},
		"nature":       {"nature-action"},
	}
	objectsByVerb := domain.CompatibilityTable{
		"eating":   {"food"},
		"reading":  {"reading"},
		"drinking": {"drink"},
		"singing":  {"music"},
		"playing":  {"toy"},
	}

	return []domain.LevelTask{
		{
			ID:     "sb-l1-animals",
			Level:  1,
			Prompt: "Make a sentence about an animal.",
			Slots:  []domain.SlotType{domain.SlotArticle, domain.SlotSubject, domain.SlotVerb},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosArticle: bank(wA, wAn, wThe),
				domain.PosNoun:    bank(wCat, wDog, wOwl, wElephant, wFish),
				domain.PosVerb:    bank(wRuns, wSwims, wFlies),
			},
			Logic: domain.LogicRules{SubjectToVerb: animalVerbs},
		},
		{
			ID:     "sb-l1-people",
			Level:  1,
			Prompt: "Tell what a person does.",
			Slots:  []domain.SlotType{domain.SlotArticle, domain.SlotSubject, domain.SlotVerb},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosArticle: bank(wA, wThe),
				domain.PosNoun:    bank(wBoy, wGirl),
				domain.PosVerb:    bank(wRuns, wReads, wFlies),
			},
			Logic: domain.LogicRules{SubjectToVerb: animalVerbs},
		},
		{
			ID:     "sb-l2-who-does",
			Level:  2,
			Prompt: "Who does it? Match the doer with the action.",
			Slots:  []domain.SlotType{domain.SlotSubject, domain.SlotVerb},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosNoun: bank(wBirds, wKids, wMom, wTheSun, wRabbits),
				domain.PosVerb: bank(wFly, wFlies, wRun, wRuns, wRead, wReads, wShines),
			},
			Logic: domain.LogicRules{SubjectToVerb: animalVerbs},
		},
		{
			ID:     "sb-l2-what-they-do",
			Level:  2,
			Prompt: "Say what someone eats, reads, drinks, or sings.",
			Slots:  []domain.SlotType{domain.SlotSubject, domain.SlotVerb, domain.SlotObject},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosNoun: bank(wKids, wMom, wRabbits, wMyFriend, wCarrots, wSoup, wBooks, wSongs, wMilk),
				domain.PosVerb: bank(wEat, wEats, wRead, wReads, wSing, wSings, wDrinks),
			},
			Logic: domain.LogicRules{SubjectToVerb: animalVerbs, VerbToObject: objectsByVerb},
		},
		{
			ID:     "sb-l3-describe",
			Level:  3,
			Prompt: "Describe a thing or an animal.",
			Slots:  []domain.SlotType{domain.SlotArticle, domain.SlotSubject, domain.SlotLinkingVerb, domain.SlotDescriptor},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosArticle:   bank(wA, wAn, wThe),
				domain.PosNoun:      bank(wCat, wDog, wOwl, wElephant, wApple),
				domain.PosVerb:      bank(wIs, wAre),
				domain.PosAdjective: bank(wHappy, wSleepy, wRed, wJuicy, wHot),
			},
			SlotOptions: map[domain.SlotType][]string{
				domain.SlotLinkingVerb: {wIs.ID, wAre.ID},
			},
			Logic: domain.LogicRules{
				SubjectToDescriptor: domain.CompatibilityTable{
					"animal": {"feeling"},
					"bird":   {"feeling"},
					"food":   {"color", "taste"},
				},
			},
		},
		{
			ID:     "sb-l3-action-object",
			Level:  3,
			Prompt: "Tell who does what, and to what.",
			Slots:  []domain.SlotType{domain.SlotArticle, domain.SlotSubject, domain.SlotVerb, domain.SlotObject},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosArticle: bank(wA, wThe),
				domain.PosNoun:    bank(wBoy, wGirl, wDog, wCat, wSoup, wMilk, wCarrots, wBooks),
				domain.PosVerb:    bank(wEats, wReads, wDrinks),
			},
			SlotOptions: map[domain.SlotType][]string{
				domain.SlotSubject: {wBoy.ID, wGirl.ID, wDog.ID, wCat.ID},
			},
			Logic: domain.LogicRules{SubjectToVerb: animalVerbs, VerbToObject: objectsByVerb},
		},
		{
			ID:     "sb-l4-how-it-is",
			Level:  4,
			Prompt: "Tell how something is.",
			Slots:  []domain.SlotType{domain.SlotSubject, domain.SlotLinkingVerb, domain.SlotDescriptor},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosNoun:      bank(wTheSun, wKids, wMom, wBirds),
				domain.PosVerb:      bank(wIs, wAre),
				domain.PosAdjective: bank(wBright, wHot, wHappy, wSleepy),
			},
			SlotOptions: map[domain.SlotType][]string{
				domain.SlotLinkingVerb: {wIs.ID, wAre.ID},
			},
			Logic: domain.LogicRules{
				SubjectToDescriptor: domain.CompatibilityTable{
					"nature": {"light", "temperature"},
					"person": {"feeling"},
					"bird":   {"feeling"},
				},
			},
		},
		{
			ID:     "sb-l4-play-time",
			Level:  4,
			Prompt: "What do they do at play time?",
			Slots:  []domain.SlotType{domain.SlotSubject, domain.SlotVerb, domain.SlotObject},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosNoun: bank(wKids, wMyFriend, wKite, wSongs, wSoup),
				domain.PosVerb: bank(wFlyKid, wSing, wSings, wEats),
			},
			Logic: domain.LogicRules{
				SubjectToVerb: domain.CompatibilityTable{"person": {"person-action"}},
				VerbToObject:  objectsByVerb,
			},
		},
		{
			ID:     "sb-l5-describe-doer",
			Level:  5,
			Prompt: "Describe who does it, then tell what they do.",
			Slots:  []domain.SlotType{domain.SlotArticle, domain.SlotDescriptor, domain.SlotSubject, domain.SlotVerb, domain.SlotObject},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosArticle:   bank(wA, wAn, wThe),
				domain.PosAdjective: bank(wHappy, wHungry, wOld, wRed),
				domain.PosNoun:      bank(wBoy, wGirl, wDog, wOwl, wSoup, wMilk, wBooks, wCarrots),
				domain.PosVerb:      bank(wEats, wReads, wDrinks),
			},
			SlotOptions: map[domain.SlotType][]string{
				domain.SlotSubject: {wBoy.ID, wGirl.ID, wDog.ID, wOwl.ID},
				domain.SlotObject:  {wSoup.ID, wMilk.ID, wBooks.ID, wCarrots.ID},
			},
			Logic: domain.LogicRules{
				SubjectToVerb: animalVerbs,
				SubjectToDescriptor: domain.CompatibilityTable{
					"animal": {"feeling", "age"},
					"bird":   {"feeling", "age"},
					"person": {"feeling", "age"},
				},
				VerbToObject: objectsByVerb,
			},
		},
		{
			ID:     "sb-l5-groups",
			Level:  5,
			Prompt: "Tell what a group does together.",
			Slots:  []domain.SlotType{domain.SlotArticle, domain.SlotDescriptor, domain.SlotSubject, domain.SlotVerb, domain.SlotObject},
			WordBanks: map[domain.PartOfSpeech][]domain.WordEntry{
				domain.PosArticle:   bank(wThe),
				domain.PosAdjective: bank(wHappy, wSleepy, wHungry, wLittle),
				domain.PosNoun:      bank(wChildren, wPuppies, wSoup, wSongs, wBooks, wCarrots),
				domain.PosVerb:      bank(wEat, wEats, wSing, wRead, wReads),
			},
			SlotOptions: map[domain.SlotType][]string{
				domain.SlotSubject: {wChildren.ID, wPuppies.ID},
				domain.SlotObject:  {wSoup.ID, wSongs.ID, wBooks.ID, wCarrots.ID},
			},
			Logic: domain.LogicRules{
				SubjectToVerb: animalVerbs,
				SubjectToDescriptor: domain.CompatibilityTable{
					"person": {"feeling", "size"},
					"animal": {"feeling", "size"},
				},
				VerbToObject: objectsByVerb,
			},
		},
	}
}

// All returns every task ordered by level, then ID.
func All() []domain.LevelTask {
	tasks := catalog()
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Level != tasks[j].Level {
			return tasks[i].Level < tasks[j].Level
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

// ByID looks up a single task.
func ByID(id string) (domain.LevelTask, bool) {
	for _, t := range catalog() {
		if t.ID == id {
			return t, true
		}
	}
	return domain.LevelTask{}, false
}

// tierByBand maps each four-level curriculum band to the task tiers its
// levels draw from, in band position order.
var tierByBand = [5][4]int{
	{1, 2, 3, 4},
	{1, 1, 2, 2},
	{3, 3, 4, 4},
	{5, 5, 5, 5},
	{5, 5, 5, 5},
}

// TierForLevel returns the task tier used at a curriculum level. Levels
// outside 1..20 are clamped to the nearest end.
func TierForLevel(level int) int {
	switch {
	case level < 1:
		level = 1
	case level > len(tierByBand)*4:
		level = len(tierByBand) * 4
	}
	return tierByBand[(level-1)/4][(level-1)%4]
}

// ForTier returns the tasks authored for one tier, ordered by ID.
func ForTier(tier int) []domain.LevelTask {
	var out []domain.LevelTask
	for _, t := range All() {
		if t.Level == tier {
			out = append(out, t)
		}
	}
	return out
}

// ForLevel returns the tasks used at a curriculum level.
func ForLevel(level int) []domain.LevelTask {
	return ForTier(TierForLevel(level))
}

// Tiers returns the distinct authored tiers in ascending order.
func Tiers() []int {
	seen := make(map[int]bool)
	var tiers []int
	for _, t := range catalog() {
		if !seen[t.Level] {
			seen[t.Level] = true
			tiers = append(tiers, t.Level)
		}
	}
	sort.Ints(tiers)
	return tiers
}

// TaskForQuestion picks the task backing a slot-build question at a
// curriculum level. The choice rotates through the level's tasks by question
// number so a level with two tasks alternates between them.
func TaskForQuestion(level, questionNumber int) (domain.LevelTask, bool) {
	tasks := ForLevel(level)
	if len(tasks) == 0 {
		return domain.LevelTask{}, false
	}
	idx := (questionNumber - 1) % len(tasks)
	if idx < 0 {
		idx = 0
	}
	return tasks[idx], true
}
