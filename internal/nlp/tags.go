package nlp

// Penn Treebank tag to universal coarse part of speech.
var coarse = map[string]string{
	"$":     "SYM",
	"#":     "SYM",
	"''":    "PUNCT",
	"``":    "PUNCT",
	",":     "PUNCT",
	".":     "PUNCT",
	":":     "PUNCT",
	"(":     "PUNCT",
	")":     "PUNCT",
	"-LRB-": "PUNCT",
	"-RRB-": "PUNCT",
	"HYPH":  "PUNCT",
	"NFP":   "PUNCT",
	"ADD":   "X",
	"AFX":   "ADJ",
	"CC":    "CCONJ",
	"CD":    "NUM",
	"DT":    "DET",
	"EX":    "PRON",
	"FW":    "X",
	"IN":    "ADP",
	"JJ":    "ADJ",
	"JJR":   "ADJ",
	"JJS":   "ADJ",
	"LS":    "X",
	"MD":    "AUX",
	"NN":    "NOUN",
	"NNS":   "NOUN",
	"NNP":   "PROPN",
	"NNPS":  "PROPN",
	"PDT":   "DET",
	"POS":   "PART",
	"PRP":   "PRON",
	"PRP$":  "PRON",
	"RB":    "ADV",
	"RBR":   "ADV",
	"RBS":   "ADV",
	"RP":    "ADP",
	"SYM":   "SYM",
	"TO":    "PART",
	"UH":    "INTJ",
	"VB":    "VERB",
	"VBD":   "VERB",
	"VBG":   "VERB",
	"VBN":   "VERB",
	"VBP":   "VERB",
	"VBZ":   "VERB",
	"WDT":   "PRON",
	"WP":    "PRON",
	"WP$":   "PRON",
	"WRB":   "ADV",
}

// CoarsePOS returns the universal part of speech for a Penn Treebank tag,
// or "X" when the tag is unknown.
func CoarsePOS(tag string) string {
	if pos, ok := coarse[tag]; ok {
		return pos
	}
	return "X"
}
