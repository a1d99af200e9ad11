package puzzle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/on-the-ground/powereggs/effects/binding"
	"github.com/on-the-ground/powereggs/effects/configkeys"
	"github.com/on-the-ground/powereggs/effects/log"
	"github.com/on-the-ground/powereggs/eggdrop"
	"go.uber.org/multierr"
)

// Config drives a Runner.
type Config struct {
	Limits   eggdrop.Limits
	Strategy eggdrop.Strategy
	Ceiling  int
	Memo     MemoKind
	MemoSize int
}

func DefaultConfig() Config {
	return Config{
		Limits:   eggdrop.DefaultLimits,
		Strategy: eggdrop.StrategyScan,
		Ceiling:  eggdrop.DefaultDropCeiling,
		Memo:     MemoTrie,
		MemoSize: 1024,
	}
}

// ConfigFromBindings reads a Config from the binding effect in ctx.
// Unbound keys keep their DefaultConfig values.
func ConfigFromBindings(ctx context.Context) (Config, error) {
	def := DefaultConfig()
	var cfg Config

	maxFloors, err1 := binding.GetOrDefault(ctx, configkeys.ConfigSolverMaxFloors, def.Limits.MaxFloors)
	maxEggs, err2 := binding.GetOrDefault(ctx, configkeys.ConfigSolverMaxEggs, def.Limits.MaxEggs)
	strategy, err3 := binding.GetOrDefault(ctx, configkeys.ConfigSolverStrategy, string(def.Strategy))
	ceiling, err4 := binding.GetOrDefault(ctx, configkeys.ConfigPolicyDropCeiling, def.Ceiling)
	memo, err5 := binding.GetOrDefault(ctx, configkeys.ConfigRunnerMemo, string(def.Memo))
	memoSize, err6 := binding.GetOrDefault(ctx, configkeys.ConfigRunnerMemoSize, def.MemoSize)
	if err := multierr.Combine(err1, err2, err3, err4, err5, err6); err != nil {
		return cfg, fmt.Errorf("reading runner config: %w", err)
	}

	cfg.Limits = eggdrop.Limits{MaxFloors: maxFloors, MaxEggs: maxEggs}
	cfg.Ceiling = ceiling
	cfg.MemoSize = memoSize
	if cfg.Strategy, err1 = eggdrop.ParseStrategy(strategy); err1 != nil {
		return cfg, err1
	}
	if cfg.Memo, err1 = ParseMemoKind(memo); err1 != nil {
		return cfg, err1
	}
	return cfg, nil
}

func (c Config) validate() error {
	var err error
	if c.Limits.MaxFloors < 0 || c.Limits.MaxEggs < 0 {
		err = multierr.Append(err, fmt.Errorf("negative limits %+v", c.Limits))
	}
	if e := c.Limits.Check(c.Strategy); e != nil {
		err = multierr.Append(err, e)
	}
	if c.Ceiling < 0 {
		err = multierr.Append(err, fmt.Errorf("negative drop ceiling %d", c.Ceiling))
	}
	if c.Memo != MemoNone && c.MemoSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("memo size %d must be positive", c.MemoSize))
	}
	return err
}

// Result is the outcome of one case.
type Result struct {
	Case    Case
	Verdict eggdrop.Verdict
	Err     error
}

// Summary counts the verdicts of a batch.
type Summary struct {
	Cases  int
	ByKind map[eggdrop.Kind]int
}

// Runner answers batches of cases one at a time.
type Runner struct {
	cfg   Config
	solve SolveFunc
	close func()
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	solver := eggdrop.NewSolver(cfg.Limits, cfg.Strategy)
	solve, closeFn, err := memoize(cfg.Memo, cfg.MemoSize, solver.MinDrops)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, solve: solve, close: closeFn}, nil
}

// NewRunnerFromBindings builds a Runner from the binding effect in ctx.
func NewRunnerFromBindings(ctx context.Context) (*Runner, error) {
	cfg, err := ConfigFromBindings(ctx)
	if err != nil {
		return nil, err
	}
	return NewRunner(cfg)
}

func (r *Runner) Config() Config { return r.cfg }

// Close releases the runner's memo.
func (r *Runner) Close() {
	r.close()
}

// Solve answers a single case.
func (r *Runner) Solve(c Case) Result {
	if c.Err != nil {
		return Result{Case: c, Verdict: eggdrop.Judge(r.cfg.Ceiling, 0, c.Err), Err: c.Err}
	}
	drops, err := r.solve(c.Floors, c.Eggs)
	if err != nil {
		err = fmt.Errorf("case %d (line %d): %w", c.Index, c.Line, err)
	}
	return Result{Case: c, Verdict: eggdrop.Judge(r.cfg.Ceiling, drops, err), Err: err}
}

// Run reads a batch from in and writes one verdict line per case to out.
//
// A bad header stops the batch before any output. Out-of-range and malformed
// cases still get their line; their errors are combined and returned once
// the batch is done. Impossible cases are answers, not errors.
//
// Run logs through the log effect, so ctx must carry a log handler.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	summary := Summary{ByKind: make(map[eggdrop.Kind]int)}

	reader := NewReader(in)
	total, err := reader.Header()
	if err != nil {
		log.Effect(ctx, log.LogError, "bad batch header", map[string]any{"error": err.Error()})
		return summary, err
	}
	log.Effect(ctx, log.LogDebug, "batch started", map[string]any{
		"cases":    total,
		"strategy": string(r.cfg.Strategy),
		"memo":     string(r.cfg.Memo),
	})

	w := bufio.NewWriter(out)
	var errs error
	for {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, err)
			break
		}
		c, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			errs = multierr.Append(errs, err)
			break
		}

		res := r.Solve(c)
		summary.Cases++
		summary.ByKind[res.Verdict.Kind]++
		if _, err := fmt.Fprintln(w, res.Verdict.String()); err != nil {
			return summary, multierr.Append(errs, fmt.Errorf("writing answer: %w", err))
		}

		switch res.Verdict.Kind {
		case eggdrop.OutOfRange, eggdrop.InvalidInput:
			errs = multierr.Append(errs, res.Err)
			log.Effect(ctx, log.LogWarn, "case rejected", map[string]any{
				"case":  c.Index,
				"line":  c.Line,
				"error": res.Err.Error(),
			})
		default:
			log.Effect(ctx, log.LogDebug, "case answered", map[string]any{
				"case":    c.Index,
				"floors":  c.Floors,
				"eggs":    c.Eggs,
				"verdict": res.Verdict.Kind.String(),
				"drops":   res.Verdict.Drops,
			})
		}
	}
	if err := w.Flush(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("writing answers: %w", err))
	}

	log.Effect(ctx, log.LogInfo, "batch finished", map[string]any{
		"cases":        summary.Cases,
		"solved":       summary.ByKind[eggdrop.Solved],
		"impossible":   summary.ByKind[eggdrop.Impossible],
		"out_of_range": summary.ByKind[eggdrop.OutOfRange],
		"invalid":      summary.ByKind[eggdrop.InvalidInput],
		"errors":       len(multierr.Errors(errs)),
	})
	return summary, errs
}
