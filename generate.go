package numconst

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// Result is a generated constant: its high-precision value and
// the shortest literal for each target.
type Result struct {
	Request Request
	Value   Value
	Float32 Literal
	Float64 Literal
}

// Literal returns the literal of r for the given target.
func (r Result) Literal(t Target) Literal {
	if t == Float32 {
		return r.Float32
	}
	return r.Float64
}

// Generator evaluates and formats batches of requests.
type Generator struct {
	ctx     *Context
	log     logr.Logger
	workers int
}

// Option configures a [Generator].
type Option func(*Generator)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l logr.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// WithWorkers sets how many requests are processed at the same time.
// Values below 1 are treated as 1. The default is [runtime.GOMAXPROCS].
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = max(n, 1)
	}
}

// NewGenerator returns a generator working in the precision context c.
func NewGenerator(c *Context, opts ...Option) *Generator {
	g := &Generator{
		ctx:     c,
		log:     logr.Discard(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate evaluates every request and derives its literals.
// Requests are independent and processed concurrently;
// the results are returned in request order.
// The first failure cancels the remaining work, and no results are returned.
func (g *Generator) Generate(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, r := range reqs {
		i, r := i, r
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.generate(r)
			if err != nil {
				return fmt.Errorf("generating %v: %w", r, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	g.log.V(1).Info("generated constants", "count", len(results))
	return results, nil
}

func (g *Generator) generate(r Request) (Result, error) {
	v, err := g.ctx.Eval(r)
	if err != nil {
		return Result{}, err
	}
	res := Result{Request: r, Value: v}
	if res.Float32, err = g.ctx.Format(v, Float32); err != nil {
		return Result{}, err
	}
	if res.Float64, err = g.ctx.Format(v, Float64); err != nil {
		return Result{}, err
	}
	g.log.V(1).Info("generated", "constant", r.Expr(), "float32", res.Float32.String(), "float64", res.Float64.String())
	g.log.V(2).Info("value", "constant", r.Expr(), "value", v.String(), "float32", res.Float32.Hex, "float64", res.Float64.Hex)
	return res, nil
}
