// Package rng fills storage-typed buffers with uniform, Gaussian, and
// Bernoulli draws. Sources are caller-owned for reproducibility:
//
//	src := rng.New(42)
//	out := make([]float32, 1024)
//	rng.Uniform[float32, float32](src, len(out), -1, 1, out)
package rng

import (
	"golang.org/x/exp/rand"

	"github.com/ember-ml/ember/internal/rng"
	"github.com/ember-ml/ember/mathx"
)

// New returns a source seeded for a reproducible stream.
func New(seed uint64) *rand.Rand { return rng.New(seed) }

// Uniform fills out[:n] with draws from the closed interval [a, b].
func Uniform[D mathx.Element, M mathx.Compute](src *rand.Rand, n int, a, b M, out []D) {
	rng.Uniform[D, M](src, n, a, b, out)
}

// Gaussian fills out[:n] with normal draws; sigma must be positive.
func Gaussian[D mathx.Element, M mathx.Compute](src *rand.Rand, n int, mean, sigma M, out []D) {
	rng.Gaussian[D, M](src, n, mean, sigma, out)
}

// Bernoulli fills out[:n] with 0/1 trials at success probability p.
func Bernoulli[M mathx.Compute](src *rand.Rand, n int, p M, out []int32) {
	rng.Bernoulli[M](src, n, p, out)
}

// BernoulliU is Bernoulli with an unsigned output buffer.
func BernoulliU[M mathx.Compute](src *rand.Rand, n int, p M, out []uint32) {
	rng.BernoulliU[M](src, n, p, out)
}

// Rand returns a raw 32-bit draw from the source.
func Rand(src *rand.Rand) uint32 { return rng.Rand(src) }
