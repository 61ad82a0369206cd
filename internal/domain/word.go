package domain

type PartOfSpeech string

const (
	PosNoun      PartOfSpeech = "noun"
	PosVerb      PartOfSpeech = "verb"
	PosAdjective PartOfSpeech = "adjective"
	PosArticle   PartOfSpeech = "article"
)

// SlotType is a typed position in a sentence template.
type SlotType string

const (
	SlotArticle     SlotType = "article"
	SlotSubject     SlotType = "subject"
	SlotVerb        SlotType = "verb"
	SlotObject      SlotType = "object"
	SlotDescriptor  SlotType = "descriptor"
	SlotLinkingVerb SlotType = "linkingVerb"
)

// AllSlotTypes lists every slot type in declaration order.
func AllSlotTypes() []SlotType {
	return []SlotType{SlotArticle, SlotSubject, SlotVerb, SlotObject, SlotDescriptor, SlotLinkingVerb}
}

func (s SlotType) Valid() bool {
	switch s {
	case SlotArticle, SlotSubject, SlotVerb, SlotObject, SlotDescriptor, SlotLinkingVerb:
		return true
	}
	return false
}

// DefaultPartOfSpeech returns the word bank a slot draws from when a task
// does not restrict its options.
func (s SlotType) DefaultPartOfSpeech() PartOfSpeech {
	switch s {
	case SlotArticle:
		return PosArticle
	case SlotSubject, SlotObject:
		return PosNoun
	case SlotVerb, SlotLinkingVerb:
		return PosVerb
	case SlotDescriptor:
		return PosAdjective
	default:
		panic("domain: unknown slot type " + string(s))
	}
}

type GrammaticalNumber string

const (
	Singular GrammaticalNumber = "singular"
	Plural   GrammaticalNumber = "plural"
)

// WordEntry is one word card in a task's word bank. Identity is ID.
type WordEntry struct {
	ID           string             `json:"id"`
	Text         string             `json:"text"`
	PartOfSpeech PartOfSpeech       `json:"partOfSpeech"`
	Role         *SlotType          `json:"role,omitempty"`
	Number       *GrammaticalNumber `json:"number,omitempty"`
	Agreement    *GrammaticalNumber `json:"agreement,omitempty"`
	SemanticTags []string           `json:"semanticTags"`
}

// PrimaryTag returns the first semantic tag, which is the only tag used as a
// compatibility lookup key. Empty when the word carries no tags.
func (w WordEntry) PrimaryTag() string {
	if len(w.SemanticTags) == 0 {
		return ""
	}
	return w.SemanticTags[0]
}

// HasAnyTag reports whether the word carries at least one of the given tags.
func (w WordEntry) HasAnyTag(tags []string) bool {
	for _, have := range w.SemanticTags {
		for _, want := range tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
