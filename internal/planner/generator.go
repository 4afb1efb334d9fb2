package planner

import (
	"context"
	"errors"
	"time"

	"fitsphere/backend/internal/domain"

	"go.uber.org/zap"
)

// Defaults applied to optional prompt parameters.
const (
	DefaultExperienceLevel    = "intermediate"
	DefaultEquipmentAvailable = "basic gym equipment"
	DefaultGenerationTimeout  = 30 * time.Second
)

// Params are the inputs of a plan generation request.
type Params struct {
	Intensity          domain.Intensity
	DaysPerWeek        int
	FocusArea          domain.FocusArea
	UserGoals          string
	ExperienceLevel    string
	EquipmentAvailable string
}

func (p Params) withDefaults() Params {
	if p.ExperienceLevel == "" {
		p.ExperienceLevel = DefaultExperienceLevel
	}
	if p.EquipmentAvailable == "" {
		p.EquipmentAvailable = DefaultEquipmentAvailable
	}
	return p
}

// Generator produces a weekly plan for the given parameters.
type Generator interface {
	Generate(ctx context.Context, p Params) (*domain.WeeklyPlan, error)
}

// FallbackGenerator adapts BuildFallbackPlan to the Generator interface.
// It never returns an error.
type FallbackGenerator struct {
	logger *zap.Logger
}

// NewFallbackGenerator creates a FallbackGenerator. A nil logger disables logging.
func NewFallbackGenerator(logger *zap.Logger) *FallbackGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackGenerator{logger: logger}
}

// Generate builds the deterministic plan, logging when the requested
// focus area and intensity are substituted by the default templates.
func (g *FallbackGenerator) Generate(_ context.Context, p Params) (*domain.WeeklyPlan, error) {
	if _, found := lookupTemplates(p.FocusArea, p.Intensity); !found {
		g.logger.Warn("unknown plan parameters, using strength/beginner templates",
			zap.String("focusArea", string(p.FocusArea)),
			zap.String("intensity", string(p.Intensity)),
		)
	}
	plan := BuildFallbackPlan(p.Intensity, p.DaysPerWeek, p.FocusArea)
	return &plan, nil
}

// Result is a generated plan and whether the secondary generator produced it.
type Result struct {
	Plan         *domain.WeeklyPlan
	UsedFallback bool
}

// Chain tries a primary generator once and falls back to a secondary one on
// any failure. See WithFallback.
type Chain struct {
	primary   Generator
	secondary Generator
	timeout   time.Duration
	logger    *zap.Logger
}

// WithFallback composes primary and secondary. The primary attempt is bounded
// by timeout; there are no retries. A nil primary always uses the secondary.
func WithFallback(primary, secondary Generator, timeout time.Duration, logger *zap.Logger) *Chain {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{primary: primary, secondary: secondary, timeout: timeout, logger: logger}
}

// Generate returns the primary's plan, or the secondary's with UsedFallback set.
// An error is only returned when the secondary fails as well.
func (c *Chain) Generate(ctx context.Context, p Params) (Result, error) {
	p = p.withDefaults()

	if c.primary != nil {
		plan, err := c.tryPrimary(ctx, p)
		if err == nil {
			return Result{Plan: plan}, nil
		}
		c.logger.Warn("plan generation failed, using fallback",
			zap.Error(err),
			zap.String("focusArea", string(p.FocusArea)),
			zap.String("intensity", string(p.Intensity)),
			zap.Int("daysPerWeek", p.DaysPerWeek),
		)
	}

	plan, err := c.secondary.Generate(ctx, p)
	if err != nil {
		return Result{}, err
	}
	return Result{Plan: plan, UsedFallback: true}, nil
}

func (c *Chain) tryPrimary(ctx context.Context, p Params) (*domain.WeeklyPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	plan, err := c.primary.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("generator returned no plan")
	}
	return plan, nil
}
