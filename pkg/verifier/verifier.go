package verifier

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/checker"
	"github.com/rigcheck/rigcheck/pkg/errors"
	"github.com/rigcheck/rigcheck/pkg/header"
	"github.com/rigcheck/rigcheck/pkg/message"
)

// BuildIDField is the error context field naming the requested build id.
const BuildIDField = "buildId"

// BuildLoader resolves a build id into a fully populated build.
type BuildLoader interface {
	FindBuild(ctx context.Context, id string) (*build.Build, bool)
}

// Suggester is implemented by loaders that can propose a known id close to
// an unknown one.
type Suggester interface {
	Suggest(id string) (string, bool)
}

// Verifier verifies builds against an ordered list of checkers.
// It holds no per-call state and is safe for concurrent use.
type Verifier struct {
	loader    BuildLoader
	checkers  []checker.Checker
	formatter message.Formatter
	version   string
}

// Option is a functional option for configuring Verifier instances.
type Option func(*Verifier)

// WithCheckers replaces the default checkers. The list is copied and
// ordered by priority.
func WithCheckers(checkers ...checker.Checker) Option {
	return func(v *Verifier) {
		v.checkers = append([]checker.Checker(nil), checkers...)
		checker.Sort(v.checkers)
	}
}

// WithFormatter sets the formatter that renders findings.
func WithFormatter(f message.Formatter) Option {
	return func(v *Verifier) {
		v.formatter = f
	}
}

// WithLanguage renders findings with the built-in translations for tag.
func WithLanguage(tag language.Tag) Option {
	return func(v *Verifier) {
		v.formatter = message.NewTranslator(tag)
	}
}

// WithVersion records the producing version in report metadata.
func WithVersion(version string) Option {
	return func(v *Verifier) {
		v.version = version
	}
}

// New creates a Verifier reading builds from loader. By default it runs
// checker.Defaults() and renders English messages.
func New(loader BuildLoader, opts ...Option) *Verifier {
	v := &Verifier{
		loader:    loader,
		checkers:  checker.Defaults(),
		formatter: message.NewTranslator(message.DefaultLanguage),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// With returns a copy of v with opts applied on top of its configuration.
func (v *Verifier) With(opts ...Option) *Verifier {
	c := *v
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Checkers returns the configured checkers in execution order.
func (v *Verifier) Checkers() []checker.Checker {
	return append([]checker.Checker(nil), v.checkers...)
}

// Verify loads the build with the given id and runs every checker on it.
// An unknown id yields a NOT_FOUND error; the build itself is never
// modified.
func (v *Verifier) Verify(ctx context.Context, buildID string) (*Report, error) {
	start := time.Now()

	if v.loader == nil {
		return nil, errors.New(errors.ErrCodeInternal, "verifier has no build loader")
	}

	b, ok := v.loader.FindBuild(ctx, buildID)
	if !ok || b == nil {
		verifyTotal.WithLabelValues(resultNotFound).Inc()
		return nil, v.notFound(buildID)
	}

	sets := map[checker.Family]messageSet{
		checker.FamilyCompleteness:  {},
		checker.FamilyCompatibility: {},
		checker.FamilyOptimality:    {},
	}

	for _, c := range v.checkers {
		select {
		case <-ctx.Done():
			verifyTotal.WithLabelValues(resultCanceled).Inc()
			return nil, ctx.Err()
		default:
		}

		f := c.Check(b)
		if f == nil {
			continue
		}
		set, ok := sets[c.Family()]
		if !ok {
			slog.Warn("skipping finding of unknown checker family",
				"checker", c.Name(),
				"family", c.Family())
			continue
		}
		set.add(v.formatter.Format(f.Key, f.Args...))
	}

	report := &Report{
		BuildID:                 b.ID,
		BuildName:               b.Name,
		CompletenessViolations:  sets[checker.FamilyCompleteness].sorted(),
		CompatibilityViolations: sets[checker.FamilyCompatibility].sorted(),
		OptimalityWarnings:      sets[checker.FamilyOptimality].sorted(),
	}
	if report.BuildID == "" {
		report.BuildID = buildID
	}
	report.Annotate(header.VersionKey, v.version)
	report.Set(Kind)

	observe(report, time.Since(start))

	return report, nil
}

func (v *Verifier) notFound(buildID string) error {
	err := errors.NewNotFound(BuildIDField, buildID)
	if s, ok := v.loader.(Suggester); ok {
		if suggestion, found := s.Suggest(buildID); found {
			err.WithContext("suggestion", suggestion)
		}
	}
	return err
}

func observe(r *Report, d time.Duration) {
	verifyDuration.Observe(d.Seconds())

	result := resultValid
	if !r.Valid() {
		result = resultInvalid
	}
	verifyTotal.WithLabelValues(result).Inc()

	for _, f := range []checker.Family{checker.FamilyCompleteness, checker.FamilyCompatibility, checker.FamilyOptimality} {
		if n := r.Count(f); n > 0 {
			findingsTotal.WithLabelValues(f.String()).Add(float64(n))
		}
	}

	slog.Debug("verification completed",
		"build", r.BuildID,
		"completeness", len(r.CompletenessViolations),
		"compatibility", len(r.CompatibilityViolations),
		"optimality", len(r.OptimalityWarnings),
		"valid", r.Valid(),
		"duration", d)
}
