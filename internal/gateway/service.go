// Package gateway turns a natural-language question into executed SQL:
// build prompt, generate, validate, execute.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Annany2002/querygate/internal/core"
	"github.com/Annany2002/querygate/internal/logger"
	"github.com/Annany2002/querygate/internal/nl2sql"
	"github.com/Annany2002/querygate/internal/observability"
)

var (
	customLog = logger.NewLogger()
)

var (
	ErrInputRequired = errors.New("user input is required")
	ErrNotSelect     = errors.New("generated query is not a select statement")
	ErrGeneration    = errors.New("query generation failed")
	ErrExecution     = errors.New("query execution failed")
)

type PromptBuilder interface {
	Build(userInput string) string
}

type QueryExecutor interface {
	Run(ctx context.Context, query string) ([]map[string]any, error)
}

// Options bound the two upstream calls. Zero values leave a call without a
// deadline.
type Options struct {
	GenerationTimeout time.Duration
	QueryTimeout      time.Duration
}

// Result is a successful answer. Query is the completion exactly as the
// generation service returned it.
type Result struct {
	Query   string
	Results []map[string]any
}

// Service holds the process-wide handles shared by every request. It keeps
// no per-request state and is safe for concurrent use as long as its
// collaborators are.
type Service struct {
	prompts   PromptBuilder
	generator nl2sql.Generator
	executor  QueryExecutor
	opts      Options
}

func NewService(prompts PromptBuilder, generator nl2sql.Generator, executor QueryExecutor, opts Options) *Service {
	return &Service{
		prompts:   prompts,
		generator: generator,
		executor:  executor,
		opts:      opts,
	}
}

// Translate builds the prompt, asks the generator for one completion and
// applies the select check. The database is not touched.
func (s *Service) Translate(ctx context.Context, userInput string) (string, error) {
	if userInput == "" {
		observability.RecordOutcome(observability.OutcomeInputRequired)
		return "", ErrInputRequired
	}

	prompt := s.prompts.Build(userInput)

	genCtx, cancel := withOptionalTimeout(ctx, s.opts.GenerationTimeout)
	defer cancel()

	start := time.Now()
	generated, err := s.generator.Generate(genCtx, prompt)
	observability.ObserveStage("generate", time.Since(start).Seconds())
	if err != nil {
		observability.RecordOutcome(observability.OutcomeGenerationError)
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	if !core.IsSelectStatement(generated) {
		customLog.Warnf("Validation failed: Generated content is not a SELECT statement: %q", generated)
		observability.RecordOutcome(observability.OutcomeRejected)
		return "", fmt.Errorf("%w: %q", ErrNotSelect, generated)
	}

	return generated, nil
}

// Ask runs the whole pipeline. Every call makes at most one generation call
// and one database query, and either returns all rows or an error.
func (s *Service) Ask(ctx context.Context, userInput string) (Result, error) {
	generated, err := s.Translate(ctx, userInput)
	if err != nil {
		return Result{}, err
	}

	customLog.Infof("Attempting to execute SQL: %s", generated)

	execCtx, cancel := withOptionalTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := s.executor.Run(execCtx, generated)
	observability.ObserveStage("execute", time.Since(start).Seconds())
	if err != nil {
		observability.RecordOutcome(observability.OutcomeExecutionError)
		return Result{}, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	observability.RecordOutcome(observability.OutcomeExecuted)
	return Result{Query: generated, Results: rows}, nil
}

func withOptionalTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
