// Package nlp wraps the third-party tokenizer, tagger, entity recognizer,
// lemmatizer and stopword list behind one read-only handle that is built
// once at start-up and shared by every request.
package nlp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/blevesearch/bleve/v2/analysis"
	bleveen "github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/jdkato/prose/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/DeafMist/nlp-console/internal/models"
	"github.com/DeafMist/nlp-console/internal/processing"
)

// Document is the parsed form of one input text.
type Document struct {
	// Text is the NFC-normalised input every offset refers to.
	Text      string
	Tokens    []models.Token
	Entities  []models.Entity
	Sentences int
}

// Pipeline is safe for concurrent use once constructed.
type Pipeline struct {
	stops      analysis.TokenMap
	lemmatizer *golem.Lemmatizer
	model      *prose.Model

	newDocument func(text string, opts ...prose.DocOpt) (*prose.Document, error)
}

// New loads the stopword list, the lemma dictionary and the tagger and
// entity models.
func New() (*Pipeline, error) {
	stops := analysis.NewTokenMap()
	if err := stops.LoadBytes(bleveen.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}

	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}

	// prose decodes its models on every NewDocument call unless one is
	// supplied, so decode them once here.
	warm, err := prose.NewDocument("")
	if err != nil {
		return nil, fmt.Errorf("load tagger model: %w", err)
	}

	return &Pipeline{
		stops:       stops,
		lemmatizer:  lemmatizer,
		model:       warm.Model,
		newDocument: prose.NewDocument,
	}, nil
}

// IsStop reports whether the lower-cased word is an English stopword.
func (p *Pipeline) IsStop(word string) bool {
	return p.stops[strings.ToLower(word)]
}

// Parse tokenizes, tags and extracts entities from text. Blank input
// yields an empty document without touching the tagger.
func (p *Pipeline) Parse(text string) (*Document, error) {
	text = norm.NFC.String(text)
	out := &Document{Text: text}
	if strings.TrimSpace(text) == "" {
		return out, nil
	}

	doc, err := p.newDocument(text, prose.UsingModel(p.model))
	if err != nil {
		return nil, fmt.Errorf("tag document: %w", err)
	}

	toks := doc.Tokens()
	out.Tokens = make([]models.Token, 0, len(toks))
	for _, tok := range toks {
		out.Tokens = append(out.Tokens, p.token(tok.Text, tok.Tag))
	}

	ents := doc.Entities()
	if len(ents) > 0 {
		found := make([]models.Entity, 0, len(ents))
		for _, ent := range ents {
			found = append(found, models.Entity{Text: ent.Text, Label: ent.Label})
		}
		out.Entities = LocateEntities(text, found)
	}
	out.Sentences = len(doc.Sentences())
	return out, nil
}

func (p *Pipeline) token(text, tag string) models.Token {
	t := models.Token{
		Text:    text,
		Shape:   processing.Shape(text),
		Tag:     tag,
		IsAlpha: processing.IsAlpha(text),
		IsStop:  p.IsStop(text),
	}
	t.POS = CoarsePOS(tag)

	switch {
	case !t.IsAlpha || t.POS == "PROPN":
		t.Lemma = text
	default:
		t.Lemma = p.lemmatizer.Lemma(strings.ToLower(text))
	}

	if t.POS == "VERB" && t.Lemma == "be" {
		t.POS = "AUX"
	}
	return t
}

// LocateEntities attaches byte offsets by scanning text left to right, so
// repeated mentions resolve to successive occurrences. Entity text is
// matched word by word with any run of whitespace in between, since the
// recognizer joins tokens with single spaces.
func LocateEntities(text string, ents []models.Entity) []models.Entity {
	if len(ents) == 0 {
		return nil
	}

	out := make([]models.Entity, 0, len(ents))
	cursor := 0
	for _, ent := range ents {
		e := models.Entity{Text: ent.Text, Label: ent.Label, Start: -1, End: -1}
		if re := entityPattern(ent.Text); re != nil {
			if loc := re.FindStringIndex(text[cursor:]); loc != nil {
				e.Start = cursor + loc[0]
				e.End = cursor + loc[1]
				cursor = e.End
			}
		}
		out = append(out, e)
	}
	return out
}

func entityPattern(text string) *regexp.Regexp {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(strings.Join(words, `\s+`))
}
