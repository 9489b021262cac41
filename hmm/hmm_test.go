package hmm

import (
	"math"
	"reflect"
	"testing"

	"github.com/Ericyuu1/NER/bio"
	"github.com/Ericyuu1/NER/corpus"
)

func labeled(words []string, tags []string) corpus.LabeledSentence {
	tokens := make([]corpus.Token, len(words))
	for i, w := range words {
		tokens[i] = corpus.Token{Word: w, Pos: "NNP"}
	}
	return corpus.LabeledSentence{Tokens: tokens, Chunks: bio.ChunksFromTags(tags)}
}

// philCorpus repeats the sentence so no word falls under the rare-word
// cutoff.
func philCorpus() []corpus.LabeledSentence {
	s := labeled([]string{"Phil", "is", "here"}, []string{"B-PER", "O", "O"})
	return []corpus.LabeledSentence{s, s}
}

func TestTrainDistributionsNormalize(t *testing.T) {
	model, err := Train(philCorpus(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	T := model.Tags.Len()
	W := model.Words.Len()

	sum := 0.0
	for y := range T {
		sum += math.Exp(model.Init.AtVec(y))
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("exp(init) sums to %v, want 1", sum)
	}

	for y := range T {
		rowSum := 0.0
		for yn := range T {
			rowSum += math.Exp(model.Transition.At(y, yn))
		}
		if math.Abs(rowSum-1.0) > 1e-9 {
			t.Errorf("exp(transition[%d]) sums to %v, want 1", y, rowSum)
		}
	}

	for y := range T {
		rowSum := 0.0
		for w := range W {
			rowSum += math.Exp(model.Emission.At(y, w))
		}
		if math.Abs(rowSum-1.0) > 1e-9 {
			t.Errorf("exp(emission[%d]) sums to %v, want 1", y, rowSum)
		}
	}
}

func TestTrainPhilEmission(t *testing.T) {
	model, err := Train(philCorpus(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	philID := model.Words.IndexOf("Phil")
	if philID < 0 {
		t.Fatal("Phil should be in the word vocabulary")
	}
	best, bestScore := 0, math.Inf(-1)
	for y := range model.Tags.Len() {
		if score := model.Emission.At(y, philID); score > bestScore {
			best, bestScore = y, score
		}
	}
	if got := model.Tags.Get(best); got != "B-PER" {
		t.Errorf("argmax emission tag for Phil = %q, want B-PER", got)
	}
}

func TestDecodeReproducesTraining(t *testing.T) {
	model, err := Train(philCorpus(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	tokens := philCorpus()[0].Tokens
	got, err := model.Decode(tokens)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"B-PER", "O", "O"}
	if !reflect.DeepEqual(got.BIOTags(), want) {
		t.Errorf("decoded tags = %v, want %v", got.BIOTags(), want)
	}
	wantChunks := []bio.Chunk{{Start: 0, End: 1, Label: "PER"}}
	if !reflect.DeepEqual(got.Chunks, wantChunks) {
		t.Errorf("decoded chunks = %v, want %v", got.Chunks, wantChunks)
	}
}

func TestRareWordMapsToUNK(t *testing.T) {
	sentences := []corpus.LabeledSentence{
		labeled([]string{"common", "rare"}, []string{"O", "O"}),
		labeled([]string{"common"}, []string{"O"}),
	}
	model, err := Train(sentences, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if model.Words.Contains("rare") {
		t.Error("once-seen word should not receive its own index")
	}
	if !model.Words.Contains("common") {
		t.Error("twice-seen word should be indexed")
	}
	if got := model.Words.IndexOf("UNK"); got != 0 {
		t.Errorf("UNK index = %d, want 0", got)
	}
}

func TestUnseenWordScoresViaUNK(t *testing.T) {
	model, err := Train(philCorpus(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	scorer := model.Scorer([]corpus.Token{{Word: "Zanzibar", Pos: "NNP"}})
	unkID := model.Words.IndexOf("UNK")
	for y := range model.Tags.Len() {
		want := model.Emission.At(y, unkID)
		if got := scorer.ScoreEmission(y, 0); got != want {
			t.Errorf("emission for unseen word under tag %d = %v, want UNK score %v", y, got, want)
		}
	}
}

func TestDecodeSingleWord(t *testing.T) {
	sentences := []corpus.LabeledSentence{
		labeled([]string{"India", "won"}, []string{"B-LOC", "O"}),
		labeled([]string{"India", "won"}, []string{"B-LOC", "O"}),
	}
	model, err := Train(sentences, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	got, err := model.Decode([]corpus.Token{{Word: "India", Pos: "NNP"}})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B-LOC"}; !reflect.DeepEqual(got.BIOTags(), want) {
		t.Errorf("decoded tags = %v, want %v", got.BIOTags(), want)
	}
}

func TestDecodeEmpty(t *testing.T) {
	model, err := Train(philCorpus(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := model.Decode(nil); err == nil {
		t.Error("expected error for empty token list")
	}
}

func TestDecodeDeterministic(t *testing.T) {
	model, err := Train(philCorpus(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	tokens := []corpus.Token{{Word: "Phil", Pos: "NNP"}, {Word: "Zanzibar", Pos: "NNP"}}

	first, err := model.Decode(tokens)
	if err != nil {
		t.Fatal(err)
	}
	second, err := model.Decode(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("decode not deterministic: %v vs %v", first, second)
	}
}

func TestTrainEmptyCorpus(t *testing.T) {
	if _, err := Train(nil, DefaultConfig()); err == nil {
		t.Error("expected error for empty corpus")
	}
}
