package core

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// mixedWord matches words containing at least one lowercase letter, so
// that lowering skips pure acronyms.
var mixedWord = regexp.MustCompile(`[a-zA-Z]*[a-z][a-zA-Z]*`)

// Normalize collapses a name to the index key form shared by alias
// registration and lookups: lowercased with spaces and underscores
// removed.
func Normalize(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "", "_", "")
	return replacer.Replace(lower)
}

// CamelToSentence converts "GenomicEntity" to "genomic entity". A space
// goes before every upper-to-lower transition, adjacent ones included,
// so "GeneToDiseaseAssociation" splits at each word and acronym runs
// like "RNAProduct" keep the run intact.
func CamelToSentence(value string) string {
	runes := []rune(value)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i+1 < len(runes) && unicode.IsUpper(r) && unicode.IsLower(runes[i+1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return mixedWord.ReplaceAllStringFunc(b.String(), strings.ToLower)
}

// SnakeToSentence converts "related_to" to "related to".
func SnakeToSentence(value string) string {
	return strings.ToLower(strings.ReplaceAll(value, "_", " "))
}

// SentenceToCamel converts "genomic entity" to "GenomicEntity".
func SentenceToCamel(value string) string {
	words := strings.Fields(value)
	var b strings.Builder
	for _, word := range words {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

// SentenceToSnake converts "related to" to "related_to".
func SentenceToSnake(value string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(value), " ", "_"))
}

// ParseName turns any accepted spelling of an element name - canonical
// sentence case, snake_case, CamelCase, or a prefixed CURIE - into the
// canonical sentence-case form used internally.
func ParseName(name string) string {
	trimmed := strings.TrimSpace(name)
	if idx := strings.Index(trimmed, ":"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	switch {
	case strings.Contains(trimmed, "_"):
		return SnakeToSentence(trimmed)
	case strings.Contains(trimmed, " "):
		return trimmed
	default:
		return CamelToSentence(trimmed)
	}
}

// FormatElement renders an element name as a CURIE under the given
// prefix. Classes and enum values use CamelCase local parts, slots use
// snake_case, following the published model convention.
func FormatElement(prefix string, element types.Element) string {
	if element.Kind == types.ElementKindSlot {
		return prefix + ":" + SentenceToSnake(element.Name)
	}
	return prefix + ":" + SentenceToCamel(element.Name)
}
