package domain

// CompatibilityTable maps a semantic tag to the tags it may pair with.
// A tag with no entry is unrestricted.
type CompatibilityTable map[string][]string

// Allows reports whether a word tagged key may pair with candidate. The
// lookup uses key only; an absent key is vacuously compatible.
func (t CompatibilityTable) Allows(key string, candidate WordEntry) bool {
	allowed, ok := t[key]
	if !ok {
		return true
	}
	return candidate.HasAnyTag(allowed)
}

type LogicRules struct {
	SubjectToVerb       CompatibilityTable `json:"subjectToVerb,omitempty"`
	SubjectToDescriptor CompatibilityTable `json:"subjectToDescriptor,omitempty"`
	VerbToObject        CompatibilityTable `json:"verbToObject,omitempty"`
}

// LevelTask defines one buildable sentence template.
type LevelTask struct {
	ID string `json:"id"`
	// Level is the authored difficulty tier. Several curriculum levels may
	// share a tier.
	Level       int                          `json:"level"`
	Prompt      string                       `json:"prompt"`
	Slots       []SlotType                   `json:"slots"`
	WordBanks   map[PartOfSpeech][]WordEntry `json:"wordBanks"`
	SlotOptions map[SlotType][]string        `json:"slotOptions,omitempty"`
	Logic       LogicRules                   `json:"logic"`
}

// Selection is a learner's slot-to-word assignment.
type Selection map[SlotType]WordEntry

// HasSlot reports whether the template contains slot.
func (t LevelTask) HasSlot(slot SlotType) bool {
	for _, s := range t.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// WordByID searches every word bank.
func (t LevelTask) WordByID(id string) (WordEntry, bool) {
	for _, bank := range t.WordBanks {
		for _, w := range bank {
			if w.ID == id {
				return w, true
			}
		}
	}
	return WordEntry{}, false
}

// OptionsFor returns the words a learner may place in slot. An explicit
// SlotOptions entry wins; otherwise the slot's default bank is used, skipping
// words whose declared Role names a different slot.
func (t LevelTask) OptionsFor(slot SlotType) []WordEntry {
	if ids, ok := t.SlotOptions[slot]; ok {
		out := make([]WordEntry, 0, len(ids))
		for _, id := range ids {
			if w, found := t.WordByID(id); found {
				out = append(out, w)
			}
		}
		return out
	}

	var out []WordEntry
	for _, w := range t.WordBanks[slot.DefaultPartOfSpeech()] {
		if w.Role != nil && *w.Role != slot {
			continue
		}
		out = append(out, w)
	}
	return out
}
