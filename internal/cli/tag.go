package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ericyuu1/NER/corpus"
)

func (c *CLI) newTagCommand() *cobra.Command {
	var modelName string
	var trainPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "tag [file]",
		Short: "Tag raw sentences from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Tag a file of sentences, one per line
  ner tag sentences.txt --train data/train.conll

  # Pipe a sentence from stdin
  echo "Phil flew to Baghdad" | ner tag

  # Tag with the HMM baseline
  echo "Phil flew to Baghdad" | ner tag --model hmm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer func() { _ = f.Close() }()
				input = f
			} else {
				if isStdinTerminal() {
					return cmd.Help()
				}
				slog.Debug("Reading sentences from stdin")
				input = os.Stdin
			}

			params, err := loadTrainingParams(configPath)
			if err != nil {
				return err
			}
			train, err := corpus.Read(trainPath)
			if err != nil {
				return err
			}
			slog.Info("Training", "model", modelName, "sentences", len(train))

			start := time.Now()
			model, err := trainModel(modelName, train, params)
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start))

			sc := bufio.NewScanner(input)
			for sc.Scan() {
				words := strings.Fields(sc.Text())
				if len(words) == 0 {
					continue
				}
				tokens := make([]corpus.Token, len(words))
				for i, w := range words {
					// Raw text carries no part-of-speech column.
					tokens[i] = corpus.Token{Word: w, Pos: "UNK"}
				}

				sent, err := model.Decode(tokens)
				if err != nil {
					return err
				}
				printTagged(sent)
			}
			return sc.Err()
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "crf", "Model family to train (hmm or crf)")
	cmd.Flags().StringVar(&trainPath, "train", "data/train.conll", "Path to training corpus")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML training parameters")
	return cmd
}

func printTagged(sent *corpus.LabeledSentence) {
	tags := sent.BIOTags()
	parts := make([]string, len(sent.Tokens))
	for i, tok := range sent.Tokens {
		parts[i] = tok.Word + "/" + tags[i]
	}
	fmt.Println(strings.Join(parts, " "))

	for _, ch := range sent.Chunks {
		words := make([]string, 0, ch.End-ch.Start)
		for _, tok := range sent.Tokens[ch.Start:ch.End] {
			words = append(words, tok.Word)
		}
		fmt.Printf("  %s: %s\n", ch.Label, strings.Join(words, " "))
	}
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
