// Command quizgen generates quizzes for one or more topics from the command
// line and prints them as JSON. Topics are generated concurrently; each
// generation call is independent, so no coordination beyond the errgroup is
// needed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"quizcraft/internal/adapter/quizgen"
	"quizcraft/internal/config"
	"quizcraft/internal/dto"
	"quizcraft/internal/llm"
	"quizcraft/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall generation deadline")
	flag.Parse()

	topics := flag.Args()
	if len(topics) == 0 {
		fmt.Fprintln(os.Stderr, "usage: quizgen [-timeout 2m] <topic> [<topic>...]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	provider, err := llm.NewProvider(ctx, cfg.LLM)
	if err != nil {
		logger.Get().Fatal("Failed to create LLM provider", zap.Error(err))
	}

	generator := quizgen.NewGenerator(provider, cfg.Quiz.QuestionCount)

	quizzes := make([]*dto.GenerateQuizResponse, len(topics))
	g, gctx := errgroup.WithContext(ctx)
	for i, topic := range topics {
		g.Go(func() error {
			quiz, err := generator.Generate(gctx, topic)
			if err != nil {
				return fmt.Errorf("topic %q: %w", topic, err)
			}
			quizzes[i] = dto.NewGenerateQuizResponse(quiz)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Get().Fatal("Quiz generation failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(quizzes); err != nil {
		logger.Get().Fatal("Failed to encode quizzes", zap.Error(err))
	}
}
