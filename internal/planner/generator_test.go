package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitsphere/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type generatorFunc func(ctx context.Context, p Params) (*domain.WeeklyPlan, error)

func (f generatorFunc) Generate(ctx context.Context, p Params) (*domain.WeeklyPlan, error) {
	return f(ctx, p)
}

func TestChainUsesPrimary(t *testing.T) {
	want := &domain.WeeklyPlan{Name: "ai plan"}
	primary := generatorFunc(func(context.Context, Params) (*domain.WeeklyPlan, error) { return want, nil })

	res, err := WithFallback(primary, NewFallbackGenerator(nil), time.Second, nil).
		Generate(context.Background(), Params{Intensity: domain.IntensityBeginner, DaysPerWeek: 3, FocusArea: domain.FocusStrength})
	require.NoError(t, err)
	assert.Same(t, want, res.Plan)
	assert.False(t, res.UsedFallback)
}

func TestChainFallsBackOnError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	calls := 0
	primary := generatorFunc(func(context.Context, Params) (*domain.WeeklyPlan, error) {
		calls++
		return nil, errors.New("model unavailable")
	})
	p := Params{Intensity: domain.IntensityAdvanced, DaysPerWeek: 7, FocusArea: domain.FocusStrength}

	res, err := WithFallback(primary, NewFallbackGenerator(nil), time.Second, zap.New(core)).Generate(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
	assert.Equal(t, 1, calls)

	want := BuildFallbackPlan(p.Intensity, p.DaysPerWeek, p.FocusArea)
	assert.Equal(t, &want, res.Plan)
	assert.Equal(t, 1, logs.FilterMessage("plan generation failed, using fallback").Len())
}

func TestChainFallsBackOnTimeout(t *testing.T) {
	primary := generatorFunc(func(ctx context.Context, _ Params) (*domain.WeeklyPlan, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	start := time.Now()
	res, err := WithFallback(primary, NewFallbackGenerator(nil), 20*time.Millisecond, nil).
		Generate(context.Background(), Params{Intensity: domain.IntensityBeginner, DaysPerWeek: 2, FocusArea: domain.FocusEndurance})
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
	assert.Len(t, res.Plan.Schedule, 2)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestChainFallsBackOnNilPlan(t *testing.T) {
	primary := generatorFunc(func(context.Context, Params) (*domain.WeeklyPlan, error) { return nil, nil })
	res, err := WithFallback(primary, NewFallbackGenerator(nil), time.Second, nil).
		Generate(context.Background(), Params{Intensity: domain.IntensityBeginner, DaysPerWeek: 1, FocusArea: domain.FocusStrength})
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
}

func TestChainWithoutPrimary(t *testing.T) {
	res, err := WithFallback(nil, NewFallbackGenerator(nil), 0, nil).
		Generate(context.Background(), Params{Intensity: domain.IntensityBeginner, DaysPerWeek: 3, FocusArea: domain.FocusStrength})
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
	assert.Len(t, res.Plan.Schedule, 3)
}

func TestChainPassesDefaultsToPrimary(t *testing.T) {
	var seen Params
	primary := generatorFunc(func(_ context.Context, p Params) (*domain.WeeklyPlan, error) {
		seen = p
		return &domain.WeeklyPlan{}, nil
	})
	_, err := WithFallback(primary, NewFallbackGenerator(nil), time.Second, nil).
		Generate(context.Background(), Params{Intensity: domain.IntensityBeginner, DaysPerWeek: 3, FocusArea: domain.FocusStrength})
	require.NoError(t, err)
	assert.Equal(t, DefaultExperienceLevel, seen.ExperienceLevel)
	assert.Equal(t, DefaultEquipmentAvailable, seen.EquipmentAvailable)
}

func TestFallbackGeneratorLogsSubstitution(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	gen := NewFallbackGenerator(zap.New(core))

	_, err := gen.Generate(context.Background(), Params{Intensity: domain.IntensityBeginner, DaysPerWeek: 3, FocusArea: "yoga"})
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "yoga", logs.All()[0].ContextMap()["focusArea"])

	_, err = gen.Generate(context.Background(), Params{Intensity: domain.IntensityBeginner, DaysPerWeek: 3, FocusArea: domain.FocusStrength})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}
