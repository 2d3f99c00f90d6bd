package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultVectorDimensions matches text-embedding-3-small.
const DefaultVectorDimensions = 1536

// ColdStartMode selects what taste vector a newly created user receives.
type ColdStartMode string

const (
	// ColdStartAbsent leaves the taste vector unset until the first update,
	// so the feed falls back to popularity ordering.
	ColdStartAbsent ColdStartMode = "absent"
	// ColdStartRandom assigns uniform noise in [-1, 1) to every component.
	ColdStartRandom ColdStartMode = "random"
)

// TasteConfig holds configuration for maintaining user taste vectors.
type TasteConfig struct {
	// Dimensions is the length of every taste and content vector.
	Dimensions int

	// LikeThreshold is the number of likes since the last update needed before recomputing.
	LikeThreshold int

	// LearningRate is the fraction of the distance moved towards the mean of newly liked content.
	LearningRate float64

	ColdStart ColdStartMode
}

// DefaultTasteConfig returns the default taste profile configuration.
func DefaultTasteConfig() TasteConfig {
	return TasteConfig{
		Dimensions:    DefaultVectorDimensions,
		LikeThreshold: 3,
		LearningRate:  0.3,
		ColdStart:     ColdStartAbsent,
	}
}

// Validate returns an error if the configuration cannot produce finite updates.
func (c TasteConfig) Validate() error {
	if c.Dimensions <= 0 {
		return fmt.Errorf("dimensions must be positive, got %d", c.Dimensions)
	}
	if c.LikeThreshold < 1 {
		return fmt.Errorf("like threshold must be at least 1, got %d", c.LikeThreshold)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1], got %v", c.LearningRate)
	}
	switch c.ColdStart {
	case ColdStartAbsent, ColdStartRandom:
	default:
		return fmt.Errorf("unknown cold start mode [%s]", c.ColdStart)
	}
	return nil
}

// InitialTasteVector returns the taste vector for a new user, or nil under ColdStartAbsent.
func (c TasteConfig) InitialTasteVector(rng *rand.Rand) []float32 {
	if c.ColdStart == ColdStartRandom {
		return RandomVector(c.Dimensions, rng)
	}
	return nil
}

// TasteProfile is a user's taste vector and when it was last recomputed.
// Vector is nil when the user has no profile yet.
type TasteProfile struct {
	UserID        string
	Vector        []float32
	LastUpdatedAt time.Time
}

// HasVector reports whether the profile can be used for similarity ranking.
func (p TasteProfile) HasVector() bool {
	return len(p.Vector) > 0
}

// TasteUpdateOutcome describes what an incremental taste update did.
type TasteUpdateOutcome string

const (
	TasteUpdateApplied        TasteUpdateOutcome = "applied"
	TasteUpdateBelowThreshold TasteUpdateOutcome = "below_threshold"
	TasteUpdateNoVectors      TasteUpdateOutcome = "no_vectors"
	TasteUpdateUserNotFound   TasteUpdateOutcome = "user_not_found"
	// TasteUpdateNoTasteVector is only reported under ColdStartRandom, where every user should have a vector.
	TasteUpdateNoTasteVector TasteUpdateOutcome = "no_taste_vector"
)

// ComputeTasteUpdate moves the current taste vector LearningRate of the way towards the mean of liked.
// A nil current vector is replaced by the mean outright.
// Returns nil if liked is empty.
func ComputeTasteUpdate(current []float32, liked [][]float32, config TasteConfig) ([]float32, error) {
	for _, v := range liked {
		if err := ValidateVector(v, config.Dimensions); err != nil {
			return nil, fmt.Errorf("validating liked content vector: %w", err)
		}
	}

	target, err := MeanVector(liked)
	if err != nil {
		return nil, fmt.Errorf("averaging liked content vectors: %w", err)
	}
	if target == nil {
		return nil, nil
	}

	if current == nil {
		return target, nil
	}
	if err := ValidateVector(current, config.Dimensions); err != nil {
		return nil, fmt.Errorf("validating current taste vector: %w", err)
	}

	updated, err := MoveTowards(current, target, config.LearningRate)
	if err != nil {
		return nil, err
	}
	if err := ValidateVector(updated, config.Dimensions); err != nil {
		return nil, fmt.Errorf("validating updated taste vector: %w", err)
	}
	return updated, nil
}
