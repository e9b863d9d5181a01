package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/DeafMist/nlp-console/internal/models"
)

// Analyzer scores polarity and subjectivity with the VADER lexicon.
//
// Polarity is VADER's normalised compound score. Subjectivity is the share
// of the text carrying positive or negative valence, i.e. everything VADER
// does not consider neutral.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// New loads the VADER lexicon once.
func New() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the sentiment of text. Blank text is neutral and objective.
func (a *Analyzer) Score(text string) models.Sentiment {
	if strings.TrimSpace(text) == "" {
		return models.Sentiment{}
	}

	s := a.vader.PolarityScores(text)
	return models.Sentiment{
		Polarity:     clamp(s.Compound, -1, 1),
		Subjectivity: clamp(s.Positive+s.Negative, 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
