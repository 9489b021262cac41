// Package crf implements a feature-based linear-chain conditional
// random field tagger trained by stochastic gradient ascent.
package crf

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Ericyuu1/NER/corpus"
	"github.com/Ericyuu1/NER/vocab"
)

// maxNgram bounds the prefix/suffix character n-gram templates.
const maxNgram = 3

// ExtractFeatures returns the ids of the features active for tagging
// tokens[position] with tag, in template order; a template firing twice
// contributes its id twice. With addNew, unseen feature names are
// registered in features (training); without it they are dropped, so
// scoring only ever sees weights learned in training.
//
// Templates: word and part-of-speech identity at offsets -1, 0 and +1
// (with <s>/</s> and <S>/</S> sentinels past the sequence edges), prefix
// and suffix character n-grams of the current word for n = 1..3, the
// capitalization of its first character, and its character shape.
func ExtractFeatures(tokens []corpus.Token, position int, tag string, features *vocab.Vocab, addNew bool) []int {
	var feats []int
	add := func(name string) {
		if addNew {
			feats = append(feats, features.Add(name))
		} else if id := features.IndexOf(name); id >= 0 {
			feats = append(feats, id)
		}
	}

	for off := -1; off <= 1; off++ {
		word, pos := "", ""
		switch {
		case position+off < 0:
			word, pos = "<s>", "<S>"
		case position+off >= len(tokens):
			word, pos = "</s>", "</S>"
		default:
			word, pos = tokens[position+off].Word, tokens[position+off].Pos
		}
		add(fmt.Sprintf("%s:Word%d=%s", tag, off, word))
		add(fmt.Sprintf("%s:Pos%d=%s", tag, off, pos))
	}

	runes := []rune(tokens[position].Word)
	for n := 1; n <= maxNgram; n++ {
		k := n
		if k > len(runes) {
			k = len(runes)
		}
		add(fmt.Sprintf("%s:StartNgram=%s", tag, string(runes[:k])))
		add(fmt.Sprintf("%s:EndNgram=%s", tag, string(runes[len(runes)-k:])))
	}

	isCap := len(runes) > 0 && unicode.IsUpper(runes[0])
	add(fmt.Sprintf("%s:IsCap=%t", tag, isCap))
	add(fmt.Sprintf("%s:Shape=%s", tag, wordShape(runes)))
	return feats
}

// wordShape maps each character to its class: X upper, x lower, 0 digit,
// ? anything else.
func wordShape(runes []rune) string {
	var b strings.Builder
	b.Grow(len(runes))
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			b.WriteByte('X')
		case unicode.IsLower(r):
			b.WriteByte('x')
		case unicode.IsDigit(r):
			b.WriteByte('0')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
