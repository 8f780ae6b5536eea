// Package sasc: functional configuration for the annealing engine.
//
// Options follow the package convention: DefaultOptions is the single
// source of defaults, WithX constructors override one knob each, and
// nonsensical values panic (programmer error, not runtime input).
package sasc

import (
	"math"

	"go.uber.org/zap"
)

// Defaults for the annealing schedule and driver, matching SASC's
// published defaults.
const (
	// DefaultRepetitions is the number of independent restarts.
	DefaultRepetitions = 5

	// DefaultStartTemp is the initial Metropolis temperature.
	DefaultStartTemp = 10000.0

	// DefaultCoolingRate is the per-step geometric decay factor applied
	// as T ← T·(1−rate).
	DefaultCoolingRate = 0.01

	// DefaultMinTemp is the temperature floor that terminates a run.
	DefaultMinTemp = 0.001

	// DefaultCores is the scorer worker-pool size.
	DefaultCores = 1

	// UnboundedDeletions disables the global loss budget.
	UnboundedDeletions = math.MaxInt
)

// Options configures one Infer call.
//
// MaxDeletions — global cap on loss nodes (UnboundedDeletions = none).
// Repetitions  — independent annealing restarts; best result is kept.
// StartTemp / CoolingRate / MinTemp — the cooling schedule.
// MaxSteps     — optional hard step budget per run (0 = none; the
// temperature floor then terminates alone).
// Cores        — worker-pool size for the per-cell scoring scan.
// Monoclonal   — force a single founding clone (germline root keeps
// exactly one child in every tree ever scored).
// Seed         — RNG seed; 0 selects the fixed default stream, so runs
// are deterministic unless a seed is supplied.
// AlphaVariance / BetaVariance / GammaVariance — error-learning
// random-walk variances; all zero disables learning entirely.
// Moves        — relative move-kind distribution.
// MutationLabels — per-column labels carried onto gain nodes
// (loss nodes get "<label>-"); defaults to "1".."M".
// Logger       — optional progress logger; nil stays silent.
type Options struct {
	MaxDeletions int
	Repetitions  int
	StartTemp    float64
	CoolingRate  float64
	MinTemp      float64
	MaxSteps     int
	Cores        int
	Monoclonal   bool
	Seed         int64

	AlphaVariance float64
	BetaVariance  float64
	GammaVariance float64

	Moves          MoveWeights
	MutationLabels []string
	Logger         *zap.Logger
}

// Option overrides one Options knob.
type Option func(*Options)

// DefaultOptions returns the SASC defaults: unbounded deletions,
// 5 repetitions, T₀=10000 cooled by 1% per step down to 0.001, one
// scoring core, learning disabled, polyclonal, silent.
func DefaultOptions() Options {
	return Options{
		MaxDeletions: UnboundedDeletions,
		Repetitions:  DefaultRepetitions,
		StartTemp:    DefaultStartTemp,
		CoolingRate:  DefaultCoolingRate,
		MinTemp:      DefaultMinTemp,
		Cores:        DefaultCores,
		Moves:        DefaultMoveWeights(),
	}
}

// WithMaxDeletions caps the tree-wide number of loss nodes.
// Panics when n is negative; use UnboundedDeletions for no cap.
func WithMaxDeletions(n int) Option {
	if n < 0 {
		panic("sasc: MaxDeletions must be >= 0")
	}

	return func(o *Options) { o.MaxDeletions = n }
}

// WithRepetitions sets the number of independent restarts.
// Panics when n < 1.
func WithRepetitions(n int) Option {
	if n < 1 {
		panic("sasc: Repetitions must be >= 1")
	}

	return func(o *Options) { o.Repetitions = n }
}

// WithSchedule sets the cooling schedule: the initial temperature,
// the per-step decay rate and the terminating floor.
// Panics on a non-positive floor, a negative start, or a rate outside
// (0, 1).
func WithSchedule(startTemp, coolingRate, minTemp float64) Option {
	if startTemp < 0 {
		panic("sasc: StartTemp must be >= 0")
	}
	if coolingRate <= 0 || coolingRate >= 1 {
		panic("sasc: CoolingRate must lie in (0, 1)")
	}
	if minTemp <= 0 {
		panic("sasc: MinTemp must be > 0")
	}

	return func(o *Options) {
		o.StartTemp = startTemp
		o.CoolingRate = coolingRate
		o.MinTemp = minTemp
	}
}

// WithMaxSteps sets an optional hard per-run step budget.
// Panics when n is negative; 0 removes the budget.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("sasc: MaxSteps must be >= 0")
	}

	return func(o *Options) { o.MaxSteps = n }
}

// WithCores sets the scorer worker-pool size. Panics when n < 1.
func WithCores(n int) Option {
	if n < 1 {
		panic("sasc: Cores must be >= 1")
	}

	return func(o *Options) { o.Cores = n }
}

// WithMonoclonal forces the tumor to arise from a single founding
// clone: the germline root keeps exactly one child.
func WithMonoclonal() Option {
	return func(o *Options) { o.Monoclonal = true }
}

// WithSeed fixes the RNG seed. Seed 0 keeps the default deterministic
// stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithErrorLearning enables joint estimation of the error rates via a
// Gaussian random walk sharing the Metropolis gate with tree moves.
// Each variance controls the walk magnitude of the corresponding
// parameter; a zero variance pins that parameter. Panics on negatives.
func WithErrorLearning(alphaVar, betaVar, gammaVar float64) Option {
	if alphaVar < 0 || betaVar < 0 || gammaVar < 0 {
		panic("sasc: learning variances must be >= 0")
	}

	return func(o *Options) {
		o.AlphaVariance = alphaVar
		o.BetaVariance = betaVar
		o.GammaVariance = gammaVar
	}
}

// WithMoveWeights overrides the relative move-kind distribution.
// Panics when any weight is negative or all weights are zero.
func WithMoveWeights(w MoveWeights) Option {
	if w.Relocate < 0 || w.InsertLoss < 0 || w.RemoveLoss < 0 || w.PerturbRates < 0 {
		panic("sasc: move weights must be >= 0")
	}
	if w.Relocate+w.InsertLoss+w.RemoveLoss+w.PerturbRates == 0 {
		panic("sasc: at least one move weight must be > 0")
	}

	return func(o *Options) { o.Moves = w }
}

// WithMutationLabels names the mutation columns; gain nodes carry the
// label verbatim and loss nodes carry "<label>-". Length must equal M
// (checked by Infer against the matrix).
func WithMutationLabels(labels []string) Option {
	return func(o *Options) { o.MutationLabels = labels }
}

// WithLogger attaches a progress logger; per-repetition summaries are
// logged at Info level. The default is silence.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
