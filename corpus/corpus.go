// Package corpus defines tokenized sentences with entity annotations and
// a reader for whitespace-columned CoNLL-style files.
package corpus

import (
	"github.com/Ericyuu1/NER/bio"
)

// Token is a single word with its part-of-speech tag.
type Token struct {
	Word string
	Pos  string
}

// LabeledSentence pairs a token sequence with the entity spans annotated
// on it. Tags and tokens are positionally aligned.
type LabeledSentence struct {
	Tokens []Token
	Chunks []bio.Chunk
}

// Len returns the number of tokens.
func (s *LabeledSentence) Len() int {
	return len(s.Tokens)
}

// BIOTags renders the sentence's chunks as a per-token BIO tag sequence.
func (s *LabeledSentence) BIOTags() []string {
	return bio.TagsFromChunks(s.Chunks, len(s.Tokens))
}
