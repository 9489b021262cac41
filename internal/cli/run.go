package cli

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/spf13/cobra"

	ner "github.com/Ericyuu1/NER"
	"github.com/Ericyuu1/NER/corpus"
)

func (c *CLI) newRunCommand() *cobra.Command {
	var modelName string
	var trainPath string
	var devPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Train a tagger and score it on a labeled corpus",
		Example: `  # Train the CRF and evaluate it on a held-out split
  ner run --train data/train.conll --dev data/dev.conll

  # Train the HMM baseline instead
  ner run --model hmm --train data/train.conll --dev data/dev.conll

  # Override hyperparameters from a YAML file
  ner run --train data/train.conll --dev data/dev.conll --config params.yaml

  # Verbose mode with per-epoch training output
  ner run --train data/train.conll --dev data/dev.conll -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadTrainingParams(configPath)
			if err != nil {
				return err
			}

			slog.Debug("Reading training corpus", "path", trainPath)
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

			dev := train
			if devPath != "" {
				slog.Debug("Reading evaluation corpus", "path", devPath)
				dev, err = corpus.Read(devPath)
				if err != nil {
					return err
				}
			}

			start = time.Now()
			result, err := ner.Evaluate(model, dev)
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "sentences", len(dev), "duration", time.Since(start))

			printEvaluation(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "crf", "Model family to train (hmm or crf)")
	cmd.Flags().StringVar(&trainPath, "train", "data/train.conll", "Path to training corpus")
	cmd.Flags().StringVar(&devPath, "dev", "", "Path to evaluation corpus (default: score on the training corpus)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML training parameters")
	return cmd
}

func printEvaluation(result *ner.EvalResult) {
	fmt.Printf("Precision: %.1f%% (%d/%d)\n", result.Precision*100, result.Correct, result.Predicted)
	fmt.Printf("Recall:    %.1f%% (%d/%d)\n", result.Recall*100, result.Correct, result.Gold)
	fmt.Printf("F1:        %.1f%%\n", result.F1*100)

	if len(result.PerLabel) == 0 {
		return
	}
	labels := make([]string, 0, len(result.PerLabel))
	for label := range result.PerLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Printf("\nPer-label metrics:\n")
	fmt.Printf("%8s  %6s  %6s  %6s  %7s\n", "label", "prec", "recall", "f1", "gold")
	for _, label := range labels {
		lm := result.PerLabel[label]
		fmt.Printf("%8s  %5.1f%%  %5.1f%%  %5.1f%%  %7d\n",
			label, lm.Precision*100, lm.Recall*100, lm.F1*100, lm.Gold)
	}
}
