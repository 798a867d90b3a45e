// Package rng fills storage-typed buffers with random draws. Sources are
// caller-owned so concurrent streams stay independent and seeded runs
// stay reproducible; nothing here touches global state.
package rng

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ember-ml/ember/internal/half"
	"github.com/ember-ml/ember/internal/mathx"
)

// New returns a source seeded for a reproducible stream.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func checkCount(op string, n int) {
	if n < 0 {
		panic(op + ": negative element count")
	}
}

func checkSource(op string, src *rand.Rand) {
	if src == nil {
		panic(op + ": nil source")
	}
}

// Uniform fills out[:n] with draws from the closed interval [a, b]. The
// bounds are compute-type values; the upper bound is made reachable by
// widening the half-open draw to the next representable value above b.
// Draws happen in the compute type and narrow once on store.
func Uniform[D mathx.Element, M mathx.Compute](src *rand.Rand, n int, a, b M, out []D) {
	mathx.CheckPair[D, M]("rng_uniform")
	checkCount("rng_uniform", n)
	checkSource("rng_uniform", src)
	if a > b {
		panic("rng_uniform: lower bound exceeds upper bound")
	}
	if a == b {
		mathx.Set(n, a, out)
		return
	}

	// The affine form rounds twice (product, then sum) and can land one
	// step above b; the clamp keeps the interval closed.
	upper := mathx.Nextafter(b)
	var next func() M
	switch any(a).(type) {
	case float32:
		lo := float32(a)
		hi := float32(b)
		span := float32(upper) - lo
		next = func() M {
			v := lo + src.Float32()*span
			if v > hi {
				v = hi
			}
			return M(v)
		}
	case float64:
		lo := float64(a)
		hi := float64(b)
		span := float64(upper) - lo
		next = func() M {
			v := lo + src.Float64()*span
			if v > hi {
				v = hi
			}
			return M(v)
		}
	}
	store(n, next, out)
}

// Gaussian fills out[:n] with draws from a normal distribution with the
// given mean and standard deviation. sigma must be positive.
func Gaussian[D mathx.Element, M mathx.Compute](src *rand.Rand, n int, mean, sigma M, out []D) {
	mathx.CheckPair[D, M]("rng_gaussian")
	checkCount("rng_gaussian", n)
	checkSource("rng_gaussian", src)
	if sigma <= 0 {
		panic("rng_gaussian: standard deviation must be positive")
	}

	dist := distuv.Normal{Mu: float64(mean), Sigma: float64(sigma), Src: src}
	store(n, func() M { return M(dist.Rand()) }, out)
}

// store narrows compute-type draws into the storage buffer, one
// conversion per element.
func store[D mathx.Element, M mathx.Compute](n int, next func() M, out []D) {
	switch out := any(out).(type) {
	case []float32:
		for i := 0; i < n; i++ {
			out[i] = float32(next())
		}
	case []float64:
		for i := 0; i < n; i++ {
			out[i] = float64(next())
		}
	case []half.Float16:
		for i := 0; i < n; i++ {
			out[i] = half.FromFloat32(float32(next()))
		}
	}
}

// Bernoulli fills out[:n] with 0/1 trials at success probability p,
// which must lie in [0, 1].
func Bernoulli[M mathx.Compute](src *rand.Rand, n int, p M, out []int32) {
	checkCount("rng_bernoulli", n)
	checkSource("rng_bernoulli", src)
	if p < 0 || p > 1 {
		panic("rng_bernoulli: probability outside [0, 1]")
	}

	dist := distuv.Bernoulli{P: float64(p), Src: src}
	for i := 0; i < n; i++ {
		out[i] = int32(dist.Rand())
	}
}

// BernoulliU is Bernoulli with an unsigned output buffer.
func BernoulliU[M mathx.Compute](src *rand.Rand, n int, p M, out []uint32) {
	checkCount("rng_bernoulli", n)
	checkSource("rng_bernoulli", src)
	if p < 0 || p > 1 {
		panic("rng_bernoulli: probability outside [0, 1]")
	}

	dist := distuv.Bernoulli{P: float64(p), Src: src}
	for i := 0; i < n; i++ {
		out[i] = uint32(dist.Rand())
	}
}

// Rand returns a raw 32-bit draw from the source.
func Rand(src *rand.Rand) uint32 {
	checkSource("rng_rand", src)
	return src.Uint32()
}
