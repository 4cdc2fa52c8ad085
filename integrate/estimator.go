package integrate

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/jmlaurent/polymc/poly"
	"github.com/jmlaurent/polymc/utils/sampling"
)

// Estimator estimates the definite integral of a polynomial over [a, b].
// An Estimator is stateless across calls to Estimate: each call is a single
// authoritative pass over the requested number of samples, and higher
// accuracy is obtained by requesting more samples, not by retrying.
type Estimator struct {
	p       poly.Polynomial
	a, b    float64
	key     []byte
	prng    sampling.PRNG
	workers int
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithKey makes the estimator deterministic: every run with the same key,
// sample count and worker count produces the same estimate. Worker i draws
// from a KeyedPRNG seeded with the sub-key of index i derived from key.
func WithKey(key []byte) Option {
	return func(e *Estimator) {
		e.key = make([]byte, len(key))
		copy(e.key, key)
	}
}

// WithPRNG sets an explicit random source, overriding the default
// crypto/rand-backed one. The source is shared by all workers, so for
// reproducible parallel runs prefer WithKey.
func WithPRNG(prng sampling.PRNG) Option {
	return func(e *Estimator) {
		e.prng = prng
	}
}

// WithWorkers sets the number of goroutines the sampling loop is partitioned
// across. Values below 1 select runtime.NumCPU(). The default is 1.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		e.workers = n
	}
}

// NewEstimator returns an estimator for the integral of p over [a, b].
// Returns an error if b <= a.
func NewEstimator(p poly.Polynomial, a, b float64, opts ...Option) (*Estimator, error) {

	if b <= a {
		return nil, fmt.Errorf("cannot NewEstimator: invalid interval [%v, %v]: b must be strictly greater than a", a, b)
	}

	e := &Estimator{
		p:       p,
		a:       a,
		b:       b,
		workers: 1,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Result is the outcome of one estimator pass.
type Result struct {
	// Value is the estimate of the integral.
	Value float64

	// Rect is the sampling rectangle.
	Rect Rectangle

	// Positive holds the samples with 0 <= y <= p(x), Negative the samples
	// with p(x) <= y < 0, Outside every other sample. These drive the
	// estimate and are also what the charting collaborator consumes.
	Positive []Point
	Negative []Point
	Outside  []Point
}

type partial struct {
	signed   int64
	positive []Point
	negative []Point
	outside  []Point
}

// Estimate draws n samples uniformly from the bounding rectangle of the
// polynomial over [a, b] and returns the rejection-sampling estimate of the
// integral, together with the classified samples.
//
// If the rectangle has zero area the integral is exactly 0 under this
// geometric model and Estimate short-circuits, returning a zero Result with
// no samples. Returns an error if n <= 0.
func (e *Estimator) Estimate(n int) (Result, error) {

	if n <= 0 {
		return Result{}, fmt.Errorf("cannot Estimate: the number of samples must be strictly positive but is %d", n)
	}

	rect, err := BoundingRectangle(e.p, e.a, e.b)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Rect:     rect,
		Positive: []Point{},
		Negative: []Point{},
		Outside:  []Point{},
	}

	if rect.Area() == 0 {
		return res, nil
	}

	workers := e.workers
	if workers > n {
		workers = n
	}

	prngs := make([]sampling.PRNG, workers)
	for i := range prngs {
		if prngs[i], err = e.workerPRNG(uint64(i)); err != nil {
			return Result{}, err
		}
	}

	partials := make([]partial, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		chunk := n / workers
		if i < n%workers {
			chunk++
		}

		wg.Add(1)
		go func(i, chunk int) {
			defer wg.Done()
			e.sample(sampling.NewSource(prngs[i]), rect, chunk, &partials[i])
		}(i, chunk)
	}
	wg.Wait()

	// Merging local counters and buffers in worker order: summation and
	// concatenation are commutative and associative, so the partitioning does
	// not change the expected estimate.
	var signed int64
	for i := range partials {
		signed += partials[i].signed
		res.Positive = append(res.Positive, partials[i].positive...)
		res.Negative = append(res.Negative, partials[i].negative...)
		res.Outside = append(res.Outside, partials[i].outside...)
	}

	res.Value = float64(signed) / float64(n) * rect.Area()

	return res, nil
}

func (e *Estimator) workerPRNG(i uint64) (sampling.PRNG, error) {
	switch {
	case e.prng != nil:
		return e.prng, nil
	case e.key != nil:
		return sampling.NewKeyedPRNG(sampling.DeriveKey(e.key, i))
	default:
		return sampling.NewPRNG()
	}
}

// sample draws n samples and classifies them into out. The boundary cases
// are kept exactly as specified: y == p(x) counts as a contribution on both
// sides of the axis, y == 0 only counts positively.
func (e *Estimator) sample(src *sampling.Source, rect Rectangle, n int, out *partial) {

	for k := 0; k < n; k++ {

		x := src.Float64(rect.A, rect.B)
		y := src.Float64(rect.YMin, rect.YMax)

		f := e.p.Evaluate(x)

		switch {
		case 0 <= y && y <= f:
			out.signed++
			out.positive = append(out.positive, Point{x, y})
		case f <= y && y < 0:
			out.signed--
			out.negative = append(out.negative, Point{x, y})
		default:
			out.outside = append(out.outside, Point{x, y})
		}
	}
}
