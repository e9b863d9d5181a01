package nlp

import (
	"testing"

	"github.com/jdkato/prose/v2"
	"github.com/stretchr/testify/require"
)

func TestParseReusesLoadedModel(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	require.NotNil(t, p.model)

	var used []*prose.Model
	p.newDocument = func(text string, opts ...prose.DocOpt) (*prose.Document, error) {
		doc, err := prose.NewDocument(text, opts...)
		if doc != nil {
			used = append(used, doc.Model)
		}
		return doc, err
	}

	for _, text := range []string{"Ada Lovelace lived in London.", "Paris is big."} {
		_, err := p.Parse(text)
		require.NoError(t, err)
	}

	require.Len(t, used, 2)
	for _, m := range used {
		require.Same(t, p.model, m)
	}
}
