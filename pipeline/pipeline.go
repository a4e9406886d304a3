package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vtdarling/kitchenAI/entity"
)

// ModelClient is the boundary to the hosted text-generation service.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// State is the record threaded through the stages of one run. A stage
// returns a partial State; nil fields leave the prior value untouched.
type State struct {
	DishName string
	Category *string
	Recipe   *string
}

// Stage is one sequential unit of work. Each stage issues exactly one model
// call and produces a partial state update.
type Stage func(ctx context.Context, s State) (State, error)

// Result is what a successful run yields. Category is nil for the guarded
// variant, which never classifies.
type Result struct {
	Category *string
	Recipe   string
}

// Pipeline runs an ordered list of stages over a shared state record. Stages
// execute strictly in order; a failed stage aborts the run and later stages
// never execute.
type Pipeline struct {
	stages []Stage
}

// NewTwoStagePipeline builds the categorize-then-generate variant.
func NewTwoStagePipeline(client ModelClient) *Pipeline {
	return &Pipeline{stages: []Stage{
		categorizeStage(client),
		generateStage(client),
	}}
}

// NewGuardedPipeline builds the single-stage variant whose prompt embeds a
// content-safety check. No category is produced.
func NewGuardedPipeline(client ModelClient) *Pipeline {
	return &Pipeline{stages: []Stage{
		guardedGenerateStage(client),
	}}
}

// Run executes the stages for one dish. It returns entity.ErrEmptyDish for a
// blank dish name before any model call, and entity.ErrModelUnavailable when
// any stage's model call fails.
func (p *Pipeline) Run(ctx context.Context, dishName string) (Result, error) {
	if strings.TrimSpace(dishName) == "" {
		return Result{}, entity.ErrEmptyDish
	}

	state := State{DishName: dishName}
	for _, stage := range p.stages {
		update, err := stage(ctx, state)
		if err != nil {
			return Result{}, err
		}
		state = merge(state, update)
	}

	if state.Recipe == nil {
		return Result{}, fmt.Errorf("%w: no recipe produced", entity.ErrModelUnavailable)
	}
	return Result{Category: state.Category, Recipe: *state.Recipe}, nil
}

// merge applies a partial update to the prior state, last non-nil value wins.
func merge(prev, update State) State {
	next := prev
	if update.Category != nil {
		next.Category = update.Category
	}
	if update.Recipe != nil {
		next.Recipe = update.Recipe
	}
	return next
}

func categorizeStage(client ModelClient) Stage {
	return func(ctx context.Context, s State) (State, error) {
		out, err := client.Complete(ctx, categorizePrompt(s.DishName))
		if err != nil {
			return State{}, fmt.Errorf("%w: categorize: %v", entity.ErrModelUnavailable, err)
		}
		// The raw label is trimmed and stored as-is, without re-validation
		// against the label set. A whitespace-only answer passes through
		// as opaque text.
		category := strings.TrimSpace(out)
		return State{Category: &category}, nil
	}
}

func generateStage(client ModelClient) Stage {
	return func(ctx context.Context, s State) (State, error) {
		category := ""
		if s.Category != nil {
			category = *s.Category
		}
		out, err := client.Complete(ctx, generatePrompt(s.DishName, category))
		if err != nil {
			return State{}, fmt.Errorf("%w: generate: %v", entity.ErrModelUnavailable, err)
		}
		if strings.TrimSpace(out) == "" {
			return State{}, fmt.Errorf("%w: generate returned empty content", entity.ErrModelUnavailable)
		}
		return State{Recipe: &out}, nil
	}
}

func guardedGenerateStage(client ModelClient) Stage {
	return func(ctx context.Context, s State) (State, error) {
		out, err := client.Complete(ctx, guardedPrompt(s.DishName))
		if err != nil {
			return State{}, fmt.Errorf("%w: generate: %v", entity.ErrModelUnavailable, err)
		}
		if strings.TrimSpace(out) == "" {
			return State{}, fmt.Errorf("%w: generate returned empty content", entity.ErrModelUnavailable)
		}
		// A refusal is a valid completion, not a failure.
		return State{Recipe: &out}, nil
	}
}
