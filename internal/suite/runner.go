package suite

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AndreyAkinshin/lre/internal/errors"
	"github.com/AndreyAkinshin/lre/pkg/lre"
)

// Runner evaluates suites.
type Runner struct {
	Logger   *zap.Logger
	Parallel int     // Suites evaluated at once; 0 means one per CPU
	Slack    float64 // Overrides lre.Slack when positive
}

// NewRunner creates a runner that logs to logger. A nil logger discards logs.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Logger: logger}
}

// Run evaluates every case of every suite. Suites run concurrently, each into
// its own store; the stores are merged in suite order so the report does not
// depend on scheduling.
//
// Precision mismatches are collected in the report. A case whose literals
// cannot be used stops the run with a configuration error.
func (r *Runner) Run(ctx context.Context, suites []*Suite) (*Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := r.Parallel
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	partials := make([]*Report, len(suites))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, s := range suites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := r.runSuite(s, logger.With(zap.String("suite", s.Name)))
			if err != nil {
				return err
			}
			partials[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Store: lre.NewStore()}
	for _, p := range partials {
		report.Store.Merge(p.Store)
		report.Failures = append(report.Failures, p.Failures...)
		report.Total += p.Total
		report.Passed += p.Passed
	}
	return report, nil
}

func (r *Runner) runSuite(s *Suite, logger *zap.Logger) (*Report, error) {
	logger.Debug("evaluating suite",
		zap.String("path", s.Path),
		zap.String("type", s.Type),
		zap.Int("cases", len(s.Cases)))

	rep := &Report{Store: lre.NewStore()}
	for _, c := range s.Cases {
		var (
			j   lre.Judgment
			err error
		)
		switch s.Type {
		case TypeFloat32:
			j, err = checkCase[float32](s, c, r.Slack, rep.Store)
		case TypeFloat64:
			j, err = checkCase[float64](s, c, r.Slack, rep.Store)
		default:
			return nil, errors.Configf("suite %s: unsupported type %q", s.Name, s.Type)
		}
		if err != nil {
			return nil, errors.CaseError(s.Name, c.Name, err)
		}

		rep.Total++
		if j.Passed {
			rep.Passed++
			logger.Debug("case passed",
				zap.String("case", c.Name),
				zap.String("field", c.Field),
				zap.Float64("lre", j.LRE))
			continue
		}
		rep.Failures = append(rep.Failures, Failure{Suite: s.Name, Case: c.Name, Field: c.Field, Judgment: j})
		logger.Info("case failed",
			zap.String("case", c.Name),
			zap.String("field", c.Field),
			zap.String("judgment", j.String()))
	}
	return rep, nil
}

func checkCase[T lre.Float](s *Suite, c Case, slack float64, store *lre.Store) (lre.Judgment, error) {
	x, err := lre.ParseLiteral[T](string(c.Candidate))
	if err != nil {
		return lre.Judgment{}, fmt.Errorf("candidate %q: %w", c.Candidate, err)
	}
	return lre.CheckLiteral(x, string(c.Reference), lre.LiteralOptions{
		Exact:  s.Exact || c.Exact,
		Digits: c.Digits,
		Slack:  slack,
		Record: &lre.Record{
			Store:      store,
			Table:      s.Table,
			TestCase:   c.Name,
			Field:      c.Field,
			Annotation: c.Annotation,
		},
	})
}
