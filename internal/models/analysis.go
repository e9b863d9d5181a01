package models

import "time"

// Token is one row of the token table.
type Token struct {
	Text    string `json:"text"`
	Shape   string `json:"shape"`
	POS     string `json:"pos"`
	Tag     string `json:"tag"`
	Lemma   string `json:"lemma"`
	IsAlpha bool   `json:"is_alpha"`
	IsStop  bool   `json:"is_stop"`
}

// Entity is a labelled span of the document. Start and End are byte
// offsets into the analysed text; both are -1 when the span could not be
// located.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Located reports whether the entity carries usable offsets.
func (e Entity) Located() bool {
	return e.Start >= 0 && e.End > e.Start
}

// Keyword is a row of the keyword frequency table.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Count is a generic label/occurrence pair used by distributions.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Sentiment holds polarity in [-1, 1] and subjectivity in [0, 1].
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// WordStats summarises character and word level counts of a text.
type WordStats struct {
	Length          int            `json:"length"`
	Vowels          int            `json:"vowels"`
	Consonants      int            `json:"consonants"`
	Stopwords       int            `json:"stopwords"`
	Words           int            `json:"words"`
	Sentences       int            `json:"sentences"`
	VowelCounts     map[string]int `json:"vowel_counts"`
	ConsonantCounts map[string]int `json:"consonant_counts"`
}

// Analysis is the result of one "Analyze" action.
type Analysis struct {
	ID           string        `json:"id"`
	Text         string        `json:"text"`
	KeywordLimit int           `json:"keyword_limit"`
	Tokens       []Token       `json:"tokens"`
	Entities     []Entity      `json:"entities"`
	Stats        WordStats     `json:"word_stats"`
	Keywords     []Keyword     `json:"keywords"`
	Sentiment    Sentiment     `json:"sentiment"`
	POS          []Count       `json:"pos_distribution"`
	CreatedAt    time.Time     `json:"created_at"`
	Duration     time.Duration `json:"duration_ns"`
}
