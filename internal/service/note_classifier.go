package service

import (
	"strings"
	"unicode"
)

// MaxClassifiedPoints caps each classifier output list.
const MaxClassifiedPoints = 5

var defaultStrengthKeywords = []string{
	"baik", "bagus", "lancar", "sempurna", "jelas", "sudah", "benar", "tepat", "mumtaz", "masya allah", "masyaallah",
	"good", "excellent", "perfect", "clear", "already", "fluent", "correct", "outstanding",
}

var defaultImprovementKeywords = []string{
	"perlu", "kurang", "harus", "belum", "salah", "ulang", "latihan", "perbaiki", "tingkatkan",
	"needs", "less", "must", "not yet", "wrong", "repeat", "practice", "improve",
}

// keywordExceptions lists words that contain a keyword without carrying its meaning,
// such as "baik" inside "perbaiki" or "clear" inside "unclear".
var keywordExceptions = map[string][]string{
	"baik":    {"perbaik"},
	"clear":   {"unclear"},
	"correct": {"incorrect"},
	"perfect": {"imperfect"},
	"less":    {"unless", "bless"},
	"ulang":   {"pulang"},
}

// NoteClassifier sorts free-text evaluator notes into strengths and areas for improvement.
type NoteClassifier struct {
	strengths    []string
	improvements []string
	limit        int
}

// NewNoteClassifier builds a classifier from keyword sets. Keywords match
// case-insensitively anywhere inside a word, so affixed forms such as
// "kesalahan", "diperbaiki" and "diulang" count, except for the words in
// keywordExceptions.
func NewNoteClassifier(strengths, improvements []string, limit int) *NoteClassifier {
	if limit <= 0 {
		limit = MaxClassifiedPoints
	}
	return &NoteClassifier{
		strengths:    lowerAll(strengths),
		improvements: lowerAll(improvements),
		limit:        limit,
	}
}

// DefaultNoteClassifier uses the Indonesian and English praise/correction vocabulary examiners write in.
func DefaultNoteClassifier() *NoteClassifier {
	return NewNoteClassifier(defaultStrengthKeywords, defaultImprovementKeywords, MaxClassifiedPoints)
}

// Classify splits notes into sentences and runs two independent passes over them,
// so a sentence carrying both kinds of keyword lands in both lists.
// Each list is deduplicated in first-seen order and capped.
func (c *NoteClassifier) Classify(notes []string) ([]string, []string) {
	var sentences []string
	for _, note := range notes {
		sentences = append(sentences, splitSentences(note)...)
	}
	return c.collect(sentences, c.strengths), c.collect(sentences, c.improvements)
}

func (c *NoteClassifier) collect(sentences, keywords []string) []string {
	result := make([]string, 0, c.limit)
	seen := make(map[string]struct{})
	for _, sentence := range sentences {
		if len(result) == c.limit {
			break
		}
		if _, dup := seen[sentence]; dup {
			continue
		}
		if !containsAny(normalizeWords(sentence), keywords) {
			continue
		}
		seen[sentence] = struct{}{}
		result = append(result, sentence)
	}
	return result
}

func splitSentences(note string) []string {
	if strings.TrimSpace(note) == "" {
		return nil
	}
	var out []string
	for _, fragment := range strings.Split(note, ".") {
		if trimmed := strings.TrimSpace(fragment); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsAny(padded string, keywords []string) bool {
	words := strings.Fields(padded)
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(padded+" ", " "+kw+" ") {
				return true
			}
			continue
		}
		for _, word := range words {
			if strings.Contains(word, kw) && !excepted(word, kw) {
				return true
			}
		}
	}
	return false
}

func excepted(word, keyword string) bool {
	for _, exception := range keywordExceptions[keyword] {
		if strings.Contains(word, exception) {
			return true
		}
	}
	return false
}

// normalizeWords lowercases text and collapses punctuation into single spaces, with a leading space.
func normalizeWords(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 1)
	b.WriteByte(' ')
	space := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return b.String()
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(normalizeWords(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func derefNotes(notes []*string) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		if n != nil {
			out = append(out, *n)
		}
	}
	return out
}
