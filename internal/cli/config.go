package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ner "github.com/Ericyuu1/NER"
	"github.com/Ericyuu1/NER/corpus"
	"github.com/Ericyuu1/NER/crf"
	"github.com/Ericyuu1/NER/hmm"
	"github.com/Ericyuu1/NER/optimizer"
)

// TrainingParams collects the hyperparameters of both model families so
// a single YAML file can configure either.
type TrainingParams struct {
	Smoothing       float64 `yaml:"smoothing"`
	Epochs          int     `yaml:"epochs"`
	LearningRate    float64 `yaml:"learning_rate"`
	GradientDivisor float64 `yaml:"gradient_divisor"`
	Seed            uint64  `yaml:"seed"`
	Optimizer       string  `yaml:"optimizer"`
}

func defaultTrainingParams() TrainingParams {
	hc := hmm.DefaultConfig()
	cc := crf.DefaultTrainerConfig()
	return TrainingParams{
		Smoothing:       hc.Smoothing,
		Epochs:          cc.Epochs,
		LearningRate:    cc.LearningRate,
		GradientDivisor: cc.GradientDivisor,
		Seed:            cc.Seed,
		Optimizer:       "sgd",
	}
}

// loadTrainingParams reads a YAML parameter file over the defaults. An
// empty path returns the defaults unchanged.
func loadTrainingParams(path string) (TrainingParams, error) {
	params := defaultTrainingParams()
	if path == "" {
		return params, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse config: %w", err)
	}
	return params, nil
}

// trainModel trains the named model family on the given corpus.
func trainModel(name string, sentences []corpus.LabeledSentence, params TrainingParams) (ner.Model, error) {
	switch name {
	case "hmm":
		return hmm.Train(sentences, hmm.Config{Smoothing: params.Smoothing})
	case "crf":
		config := crf.TrainerConfig{
			Epochs:          params.Epochs,
			LearningRate:    params.LearningRate,
			GradientDivisor: params.GradientDivisor,
			Seed:            params.Seed,
		}
		switch params.Optimizer {
		case "", "sgd":
		case "adagrad":
			config.NewOptimizer = func(w []float64) optimizer.Optimizer {
				return optimizer.NewAdagrad(w, params.LearningRate)
			}
		default:
			return nil, fmt.Errorf("unknown optimizer %q (want sgd or adagrad)", params.Optimizer)
		}
		return crf.Train(sentences, config)
	default:
		return nil, fmt.Errorf("unknown model %q (want hmm or crf)", name)
	}
}
