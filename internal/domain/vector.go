package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// ValidateVector checks that v has exactly dims finite components.
func ValidateVector(v []float32, dims int) error {
	if len(v) != dims {
		return fmt.Errorf("%w: got %d components, want %d", ErrDimensionMismatch, len(v), dims)
	}
	for i, x := range v {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return fmt.Errorf("%w: component %d is %v", ErrNonFiniteVector, i, x)
		}
	}
	return nil
}

// CosineSimilarity returns 1 - cosineDistance(a, b).
// A zero-length vector has no direction, so its similarity to anything is 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d components", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		ai, bi := float64(a[i]), float64(b[i])
		dot += ai * bi
		normA += ai * ai
		normB += bi * bi
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0, nil
	}
	return dot / denom, nil
}

// MeanVector computes the componentwise arithmetic mean of vectors.
// Returns nil if vectors is empty.
func MeanVector(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, nil
	}

	dims := len(vectors[0])
	sum := make([]float64, dims)
	for _, v := range vectors {
		if len(v) != dims {
			return nil, fmt.Errorf("%w: %d vs %d components", ErrDimensionMismatch, len(v), dims)
		}
		for i, x := range v {
			sum[i] += float64(x)
		}
	}

	result := make([]float32, dims)
	for i, s := range sum {
		result[i] = float32(s / float64(len(vectors)))
	}
	return result, nil
}

// MoveTowards returns current + (target - current) * rate, componentwise.
func MoveTowards(current, target []float32, rate float64) ([]float32, error) {
	if len(current) != len(target) {
		return nil, fmt.Errorf("%w: %d vs %d components", ErrDimensionMismatch, len(current), len(target))
	}

	result := make([]float32, len(current))
	for i := range current {
		c := float64(current[i])
		result[i] = float32(c + (float64(target[i])-c)*rate)
	}
	return result, nil
}

// RandomVector draws dims components independently and uniformly from [-1, 1).
func RandomVector(dims int, rng *rand.Rand) []float32 {
	v := make([]float32, dims)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}
