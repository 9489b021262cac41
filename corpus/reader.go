package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ericyuu1/NER/bio"
)

// Read loads labeled sentences from the CoNLL-style file at path.
func Read(path string) ([]LabeledSentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	sentences, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	return sentences, nil
}

// Parse reads CoNLL-style annotations: one token per line with
// whitespace-separated word, part-of-speech, syntactic-chunk, and NER
// columns, sentences separated by blank lines. Document markers
// (-DOCSTART-) and lines without four columns are skipped.
func Parse(r io.Reader) ([]LabeledSentence, error) {
	var sentences []LabeledSentence
	var tokens []Token
	var tags []string

	flush := func() {
		if len(tokens) == 0 {
			return
		}
		sentences = append(sentences, LabeledSentence{
			Tokens: tokens,
			Chunks: bio.ChunksFromTags(tags),
		})
		tokens = nil
		tags = nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			flush()
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "-DOCSTART-" || len(fields) != 4 {
			continue
		}
		tokens = append(tokens, Token{Word: fields[0], Pos: fields[1]})
		tags = append(tags, fields[3])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return sentences, nil
}
