// Command train-voice runs the encoder, synthesizer and vocoder
// training phases of a Real-Time-Voice-Cloning checkout in sequence.
// The checkout is expected next to the working directory unless
// -rtvc_root points elsewhere.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/voicebridge/voicebridge/internal/training"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	datasetRoot := flag.String("dataset_root", "", "dataset root directory, e.g. VCTK or LJSpeech layout (required)")
	rtvcRoot := flag.String("rtvc_root", "Real-Time-Voice-Cloning", "path to the Real-Time-Voice-Cloning checkout")
	pythonBin := flag.String("python_bin", "python3", "python interpreter used to launch the phase scripts")
	encoderEpochs := flag.Int("encoder_epochs", training.DefaultEncoderEpochs, "encoder training epochs")
	synthesizerEpochs := flag.Int("synthesizer_epochs", training.DefaultSynthesizerEpochs, "synthesizer training epochs")
	vocoderEpochs := flag.Int("vocoder_epochs", training.DefaultVocoderEpochs, "vocoder training iterations")
	flag.Parse()

	if *datasetRoot == "" {
		flag.Usage()
		os.Exit(2)
	}

	o := training.New(*rtvcRoot, *datasetRoot)
	o.PythonBin = *pythonBin
	o.EncoderEpochs = *encoderEpochs
	o.SynthesizerEpochs = *synthesizerEpochs
	o.VocoderEpochs = *vocoderEpochs
	o.Log = logger

	slog.Info("starting training run",
		"dataset_root", *datasetRoot,
		"rtvc_root", *rtvcRoot,
		"encoder_epochs", *encoderEpochs,
		"synthesizer_epochs", *synthesizerEpochs,
		"vocoder_epochs", *vocoderEpochs,
	)

	if err := o.Run(context.Background()); err != nil {
		slog.Error("training run failed", "error", err)
		os.Exit(training.ExitCode(err))
	}

	slog.Info("training run complete")
}
