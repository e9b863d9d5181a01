package processing_test

import (
	"testing"

	"github.com/DeafMist/nlp-console/internal/models"
	"github.com/DeafMist/nlp-console/internal/processing"
	"github.com/stretchr/testify/require"
)

var testStops = map[string]struct{}{
	"the": {}, "a": {}, "and": {}, "is": {}, "on": {}, "don't": {},
}

func isStop(w string) bool {
	_, ok := testStops[w]
	return ok
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "punctuation", input: "Hello!!!   мир", want: "Hello мир"},
		{name: "collapse whitespace", input: "foo\n\nbar\t baz", want: "foo bar baz"},
		{name: "remove urls", input: "Check https://example.com for info", want: "Check for info"},
		{name: "keeps contractions", input: "Don’t stop", want: "Don't stop"},
		{name: "html entities", input: "fish &amp; chips", want: "fish chips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := processing.CleanText(tt.input); got != tt.want {
				t.Fatalf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemoveURLs(t *testing.T) {
	require.Equal(t, "Go   and   now", processing.RemoveURLs("Go https://example.com and http://test.org now"))
	require.Equal(t, "Hello world", processing.RemoveURLs("Hello world"))
}

func TestRankKeywords(t *testing.T) {
	text := "The cat sat on the mat. The cat is fat, and the mat is flat. Cat!"
	got := processing.RankKeywords(text, 3, 1, isStop)
	want := []models.Keyword{
		{Word: "cat", Count: 3},
		{Word: "mat", Count: 2},
		{Word: "fat", Count: 1},
	}
	require.Equal(t, want, got)

	require.Nil(t, processing.RankKeywords("", 5, 1, isStop))
}

func TestRankKeywordsNeverExceedsLimitAndIsSorted(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu " +
		"alpha beta gamma alpha beta alpha nu xi omicron pi rho sigma tau"

	for limit := 5; limit <= 15; limit++ {
		got := processing.RankKeywords(text, limit, 1, isStop)
		require.LessOrEqual(t, len(got), limit)
		for i := 1; i < len(got); i++ {
			require.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
		}
	}
}

func TestRankKeywordsMonotonicInLimit(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve"
	five := processing.RankKeywords(text, 5, 1, isStop)
	fifteen := processing.RankKeywords(text, 15, 1, isStop)
	require.Len(t, five, 5)
	require.Len(t, fifteen, 12)
	require.Equal(t, five, fifteen[:5])
}

func TestRankKeywordsWithoutLetters(t *testing.T) {
	require.Empty(t, processing.RankKeywords("123 456 !!! 789 -- 42", 10, 1, isStop))
	require.Empty(t, processing.RankKeywords("the and a is", 10, 1, isStop))
}

func TestRankKeywordsMinLenAndContractions(t *testing.T) {
	got := processing.RankKeywords("Don't go to Rome, go to Oslo", 10, 3, isStop)
	require.Equal(t, []models.Keyword{{Word: "oslo", Count: 1}, {Word: "rome", Count: 1}}, got)
}

func TestComputeWordStats(t *testing.T) {
	stats := processing.ComputeWordStats("The cab is on time", isStop)

	require.Equal(t, 18, stats.Length)
	require.Equal(t, 5, stats.Words)
	require.Equal(t, 3, stats.Stopwords)
	require.Equal(t, 6, stats.Vowels)
	require.Equal(t, 8, stats.Consonants)
	require.Equal(t, map[string]int{"e": 2, "a": 1, "i": 2, "o": 1}, stats.VowelCounts)
	require.Equal(t, 2, stats.ConsonantCounts["t"])
	require.Zero(t, stats.Sentences)
}

func TestComputeWordStatsEmpty(t *testing.T) {
	stats := processing.ComputeWordStats("", isStop)
	require.Zero(t, stats.Length)
	require.Zero(t, stats.Words)
	require.Empty(t, stats.VowelCounts)
}

func TestPOSDistribution(t *testing.T) {
	tokens := []models.Token{
		{Text: "Dogs", POS: "NOUN"},
		{Text: "bark", POS: "VERB"},
		{Text: "and", POS: "CCONJ"},
		{Text: "cats", POS: "NOUN"},
		{Text: "meow", POS: "VERB"},
		{Text: ".", POS: "PUNCT"},
		{Text: "Birds", POS: "NOUN"},
	}
	got := processing.POSDistribution(tokens)
	want := []models.Count{
		{Label: "NOUN", Count: 3},
		{Label: "VERB", Count: 2},
		{Label: "CCONJ", Count: 1},
		{Label: "PUNCT", Count: 1},
	}
	require.Equal(t, want, got)
	require.Nil(t, processing.POSDistribution(nil))
}

func TestShape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Apple", want: "Xxxxx"},
		{in: "Internationalization", want: "Xxxxx"},
		{in: "U.S.", want: "X.X."},
		{in: "2024", want: "dddd"},
		{in: "1234567", want: "dddd"},
		{in: "C3PO", want: "XdXX"},
		{in: "don't", want: "xxx'x"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, processing.Shape(tt.in))
		})
	}
}

func TestIsAlpha(t *testing.T) {
	require.True(t, processing.IsAlpha("hello"))
	require.True(t, processing.IsAlpha("Привет"))
	require.False(t, processing.IsAlpha("hello1"))
	require.False(t, processing.IsAlpha("."))
	require.False(t, processing.IsAlpha(""))
}
