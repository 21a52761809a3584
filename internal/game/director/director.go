// Package director orchestrates one turn of the game: it builds the prompt
// for an intent, issues the generation call, validates the reply, and
// applies the result to the game state. Generation failures never escape;
// every operation completes with either the generated content or the
// intent's fixed fallback.
package director

import (
	"context"
	"time"

	"dungeonexplorer/internal/debug"
	"dungeonexplorer/internal/game"
	"dungeonexplorer/internal/game/response"
	"dungeonexplorer/internal/llm"
	"dungeonexplorer/internal/logging"
	"dungeonexplorer/internal/observability"
)

// Generation parameters carried over from the original client defaults.
const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

// Generator is the generation port: one attempt, raw text out, uniform
// failure. Implemented by llm.Service.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
	Model() string
}

type Director struct {
	gen    Generator
	logger *logging.GenerationLogger
	debug  *debug.Logger
}

// NewDirector creates a Director. logger may be nil to disable the audit
// log; debugLogger may be nil to disable debug output.
func NewDirector(gen Generator, logger *logging.GenerationLogger, debugLogger *debug.Logger) *Director {
	return &Director{
		gen:    gen,
		logger: logger,
		debug:  debugLogger,
	}
}

// generate runs one call for the given intent and records it.
func (d *Director) generate(ctx context.Context, intent Intent, prompt string) (string, time.Duration, error) {
	ctx = llm.WithOperation(ctx, intent.String())

	start := time.Now()
	raw, err := d.gen.Generate(ctx, prompt, defaultMaxTokens, defaultTemperature)
	return raw, time.Since(start), err
}

func (d *Director) record(ctx context.Context, intent Intent, prompt, raw string, kind response.FailureKind, took time.Duration) {
	if d.debug != nil && kind != response.FailureNone {
		d.debug.Printf("%s fell back to default content: %s", intent, kind)
	}
	if d.logger == nil {
		return
	}
	err := d.logger.Record(
		observability.SessionIDFromContext(ctx),
		intent.String(), prompt, raw, kind.String(),
		logging.Metadata{
			Model:        d.gen.Model(),
			MaxTokens:    defaultMaxTokens,
			Temperature:  defaultTemperature,
			ResponseTime: took,
		},
	)
	if err != nil && d.debug != nil {
		d.debug.Printf("failed to record %s generation: %v", intent, err)
	}
}

// InitializeWorld generates the story outline and installs it, seeding the
// initial goal when the outline supplies one. Returns how the content was
// obtained.
func (d *Director) InitializeWorld(ctx context.Context, s *game.State) response.FailureKind {
	prompt := initWorldPrompt()
	raw, took, err := d.generate(ctx, IntentInitWorld, prompt)

	sc, kind := response.StoryContext(raw, err)
	d.record(ctx, IntentInitWorld, prompt, raw, kind, took)

	s.StoryContext = sc
	s.SeedInitialGoal()
	return kind
}

// CreatePlayer generates the player character and starting location and
// installs them.
func (d *Director) CreatePlayer(ctx context.Context, s *game.State) response.FailureKind {
	prompt := createPlayerPrompt(s)
	raw, took, err := d.generate(ctx, IntentCreatePlayer, prompt)

	setup, kind := response.PlayerSetup(raw, err)
	d.record(ctx, IntentCreatePlayer, prompt, raw, kind, took)

	s.SetPlayer(setup)
	return kind
}

// OfferChoices generates the four actions available this turn. The result
// always has exactly four entries.
func (d *Director) OfferChoices(ctx context.Context, s *game.State) ([]string, response.FailureKind) {
	prompt := offerChoicesPrompt(s)
	raw, took, err := d.generate(ctx, IntentOfferChoices, prompt)

	choices, kind := response.Choices(raw, err)
	d.record(ctx, IntentOfferChoices, prompt, raw, kind, took)
	return choices, kind
}

// ResolveAction generates the outcome of the chosen action and applies it to
// the state. The returned outcome is for presentation only; it has already
// been consumed.
func (d *Director) ResolveAction(ctx context.Context, s *game.State, action string) (game.Outcome, response.FailureKind) {
	prompt := resolveActionPrompt(s, action)
	raw, took, err := d.generate(ctx, IntentResolveAction, prompt)

	outcome, kind := response.Outcome(raw, err)
	d.record(ctx, IntentResolveAction, prompt, raw, kind, took)

	s.Apply(action, outcome)
	return outcome, kind
}
