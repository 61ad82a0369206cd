package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func slotPtr(s SlotType) *SlotType { return &s }

func sampleTask() LevelTask {
	return LevelTask{
		ID:    "t1",
		Slots: []SlotType{SlotSubject, SlotVerb, SlotObject},
		WordBanks: map[PartOfSpeech][]WordEntry{
			PosNoun: {
				{ID: "cat", Text: "cat", PartOfSpeech: PosNoun, Role: slotPtr(SlotSubject), SemanticTags: []string{"animal"}},
				{ID: "milk", Text: "milk", PartOfSpeech: PosNoun, Role: slotPtr(SlotObject), SemanticTags: []string{"drink"}},
				{ID: "sun", Text: "sun", PartOfSpeech: PosNoun, SemanticTags: []string{"nature"}},
			},
			PosVerb: {{ID: "drinks", Text: "drinks", PartOfSpeech: PosVerb}},
		},
	}
}

func TestLevelTask_OptionsFor_DefaultBankRespectsRole(t *testing.T) {
	task := sampleTask()
	ids := func(ws []WordEntry) []string {
		out := make([]string, 0, len(ws))
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}
	assert.Equal(t, []string{"cat", "sun"}, ids(task.OptionsFor(SlotSubject)))
	assert.Equal(t, []string{"milk", "sun"}, ids(task.OptionsFor(SlotObject)))
	assert.Equal(t, []string{"drinks"}, ids(task.OptionsFor(SlotVerb)))
}

func TestLevelTask_OptionsFor_ExplicitOptionsWin(t *testing.T) {
	task := sampleTask()
	task.SlotOptions = map[SlotType][]string{SlotSubject: {"sun", "missing"}}
	opts := task.OptionsFor(SlotSubject)
	assert.Len(t, opts, 1)
	assert.Equal(t, "sun", opts[0].ID)
}

func TestLevelTask_WordByIDAndHasSlot(t *testing.T) {
	task := sampleTask()
	w, ok := task.WordByID("milk")
	assert.True(t, ok)
	assert.Equal(t, "milk", w.Text)
	_, ok = task.WordByID("nope")
	assert.False(t, ok)

	assert.True(t, task.HasSlot(SlotVerb))
	assert.False(t, task.HasSlot(SlotArticle))
}

func TestCompatibilityTable_Allows(t *testing.T) {
	table := CompatibilityTable{"animal": {"eating", "moving"}}
	assert.True(t, table.Allows("animal", WordEntry{SemanticTags: []string{"moving"}}))
	assert.False(t, table.Allows("animal", WordEntry{SemanticTags: []string{"reading"}}))
	assert.True(t, table.Allows("robot", WordEntry{}), "absent key is unrestricted")
}

func TestWordEntry_PrimaryTag(t *testing.T) {
	assert.Equal(t, "", WordEntry{}.PrimaryTag())
	assert.Equal(t, "bird", WordEntry{SemanticTags: []string{"bird", "animal"}}.PrimaryTag())
}

func TestSlotType_DefaultPartOfSpeech(t *testing.T) {
	for _, s := range AllSlotTypes() {
		assert.True(t, s.Valid())
		assert.NotPanics(t, func() { s.DefaultPartOfSpeech() })
	}
	assert.False(t, SlotType("adverb").Valid())
	assert.Panics(t, func() { SlotType("adverb").DefaultPartOfSpeech() })
}
