package processing

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/DeafMist/nlp-console/internal/models"
)

var urlRegex = regexp.MustCompile(`https?://[^\s]+`)

var (
	whitespace  = regexp.MustCompile(`\s+`)
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s']+`)
	apostrophes = strings.NewReplacer("’", "'", "‘", "'")
)

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)

// StopFunc reports whether a lower-cased word is a stopword.
type StopFunc func(word string) bool

// RemoveURLs removes all URLs from the input text.
func RemoveURLs(input string) string {
	return urlRegex.ReplaceAllString(input, " ")
}

// CleanText strips HTML entities, punctuation, squeezes whitespace, and removes URLs.
// Apostrophes survive so contractions stay whole.
func CleanText(input string) string {
	if input == "" {
		return ""
	}
	decoded := html.UnescapeString(input)
	decoded = apostrophes.Replace(decoded)
	decoded = RemoveURLs(decoded)
	decoded = punctuation.ReplaceAllString(decoded, " ")
	decoded = whitespace.ReplaceAllString(decoded, " ")
	decoded = strings.TrimSpace(decoded)
	return decoded
}

// RankKeywords returns the most frequent words that are not stop-words,
// ordered by descending count and then alphabetically. Words without a
// single letter are ignored. A non-positive limit returns every word.
func RankKeywords(text string, limit, minLen int, isStop StopFunc) []models.Keyword {
	clean := strings.ToLower(CleanText(text))
	if clean == "" {
		return nil
	}

	freq := make(map[string]int)
	for _, token := range strings.Fields(clean) {
		token = trimWord(token)
		if !hasLetter(token) {
			continue
		}
		if len([]rune(token)) < minLen {
			continue
		}
		if isStop != nil && isStop(token) {
			continue
		}
		freq[token]++
	}

	if len(freq) == 0 {
		return nil
	}

	pairs := make([]models.Keyword, 0, len(freq))
	for word, count := range freq {
		pairs = append(pairs, models.Keyword{Word: word, Count: count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count == pairs[j].Count {
			return pairs[i].Word < pairs[j].Word
		}
		return pairs[i].Count > pairs[j].Count
	})

	max := limit
	if max <= 0 || max > len(pairs) {
		max = len(pairs)
	}

	return pairs[:max]
}

// ComputeWordStats counts characters and words of text. Sentences is left
// for the caller, which owns the sentence segmenter.
func ComputeWordStats(text string, isStop StopFunc) models.WordStats {
	stats := models.WordStats{
		Length:          len([]rune(text)),
		VowelCounts:     map[string]int{},
		ConsonantCounts: map[string]int{},
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case strings.ContainsRune(vowels, r):
			stats.Vowels++
			stats.VowelCounts[string(r)]++
		case strings.ContainsRune(consonants, r):
			stats.Consonants++
			stats.ConsonantCounts[string(r)]++
		}
	}

	words := strings.Fields(text)
	stats.Words = len(words)
	if isStop == nil {
		return stats
	}
	for _, w := range words {
		w = trimWord(strings.ToLower(apostrophes.Replace(w)))
		if w != "" && isStop(w) {
			stats.Stopwords++
		}
	}

	return stats
}

// POSDistribution counts tokens per coarse part-of-speech label.
func POSDistribution(tokens []models.Token) []models.Count {
	if len(tokens) == 0 {
		return nil
	}

	freq := make(map[string]int)
	for _, t := range tokens {
		freq[t.POS]++
	}

	out := make([]models.Count, 0, len(freq))
	for label, count := range freq {
		out = append(out, models.Count{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Label < out[j].Label
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// Shape maps a token onto its orthographic shape: upper-case letters become
// "X", lower-case "x", digits "d" and everything else is kept. Runs of the
// same shape character are cut after four.
func Shape(text string) string {
	var b strings.Builder
	var last rune
	run := 0
	for _, r := range text {
		var s rune
		switch {
		case unicode.IsUpper(r):
			s = 'X'
		case unicode.IsLetter(r):
			s = 'x'
		case unicode.IsDigit(r):
			s = 'd'
		default:
			s = r
		}
		if s == last {
			run++
		} else {
			last = s
			run = 1
		}
		if run <= 4 {
			b.WriteRune(s)
		}
	}
	return b.String()
}

// IsAlpha reports whether text is non-empty and made of letters only.
func IsAlpha(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func trimWord(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func hasLetter(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
