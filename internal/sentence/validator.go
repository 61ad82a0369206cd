// Package sentence grades slot-based sentences built from a closed word bank.
package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

// Validate grades sel against task. Rules run in a fixed order and the first
// failing rule decides the result:
//
//  1. every slot is filled
//  2. subject number agrees with the verb and linking verb
//  3. subject -> verb semantic compatibility
//  4. subject -> descriptor semantic compatibility
//  5. verb -> object semantic compatibility
//  6. a/an agrees with the following word
//
// Word order is fixed by task.Slots, so ErrWordOrder is never produced here.
func Validate(task domain.LevelTask, sel domain.Selection) domain.ValidationResult {
	sentence := Normalize(task.Slots, sel)

	for _, slot := range task.Slots {
		if _, ok := sel[slot]; !ok {
			return failure(domain.ErrMissingComponent, sentence, slot)
		}
	}

	subject, hasSubject := sel[domain.SlotSubject]

	if hasSubject && subject.Number != nil {
		for _, slot := range []domain.SlotType{domain.SlotVerb, domain.SlotLinkingVerb} {
			v, ok := sel[slot]
			if !ok || v.Agreement == nil {
				continue
			}
			if *v.Agreement != *subject.Number {
				return failure(domain.ErrSubjectVerbAgreement, sentence, slot)
			}
		}
	}

	if hasSubject {
		key := subject.PrimaryTag()
		if v, ok := actionWord(sel); ok && !task.Logic.SubjectToVerb.Allows(key, v) {
			return failure(domain.ErrLogicMismatch, sentence, domain.SlotVerb)
		}
		if d, ok := sel[domain.SlotDescriptor]; ok && !task.Logic.SubjectToDescriptor.Allows(key, d) {
			return failure(domain.ErrLogicMismatch, sentence, domain.SlotDescriptor)
		}
	}

	if v, ok := sel[domain.SlotVerb]; ok {
		if o, ok := sel[domain.SlotObject]; ok && !task.Logic.VerbToObject.Allows(v.PrimaryTag(), o) {
			return failure(domain.ErrLogicMismatch, sentence, domain.SlotObject)
		}
	}

	if art, ok := sel[domain.SlotArticle]; ok {
		if next, ok := wordAfter(task.Slots, sel, domain.SlotArticle); ok && !ArticleAgrees(art.Text, next.Text) {
			return failure(domain.ErrLogicMismatch, sentence, domain.SlotArticle)
		}
	}

	return domain.ValidationResult{
		IsCorrect:          true,
		NormalizedSentence: sentence,
		Feedback:           successFeedback(sentence),
	}
}

// actionWord is the word checked against the subject's verb table: the verb
// when filled, otherwise the linking verb.
func actionWord(sel domain.Selection) (domain.WordEntry, bool) {
	if v, ok := sel[domain.SlotVerb]; ok {
		return v, true
	}
	v, ok := sel[domain.SlotLinkingVerb]
	return v, ok
}

// wordAfter returns the word filling the slot that follows slot in order.
func wordAfter(slots []domain.SlotType, sel domain.Selection, slot domain.SlotType) (domain.WordEntry, bool) {
	for i, s := range slots {
		if s != slot || i+1 >= len(slots) {
			continue
		}
		w, ok := sel[slots[i+1]]
		return w, ok
	}
	return domain.WordEntry{}, false
}

// ArticleAgrees applies the a/an rule by inspecting the first letter of the
// next word. It is a spelling heuristic: "a university" is rejected and
// "an hour" is rejected. Articles other than a/an always agree.
func ArticleAgrees(article, next string) bool {
	next = strings.TrimSpace(next)
	if next == "" {
		return true
	}
	vowel := startsWithVowel(next)
	switch strings.ToLower(strings.TrimSpace(article)) {
	case "a":
		return !vowel
	case "an":
		return vowel
	default:
		return true
	}
}

func startsWithVowel(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}

// Normalize joins the filled slots in template order, capitalises the first
// letter, and ends the sentence with a period. Unfilled slots are skipped.
func Normalize(slots []domain.SlotType, sel domain.Selection) string {
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		w, ok := sel[slot]
		if !ok {
			continue
		}
		if text := strings.TrimSpace(w.Text); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	s := strings.Join(parts, " ")
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:] + "."
}
