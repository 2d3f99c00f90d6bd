package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

type EnsureUserResult struct {
	Created bool
}

// EnsureUser records a user the first time the identity provider reports them signing in.
type EnsureUser struct {
	Ensurer datasources.UserEnsurer
	Config  domain.TasteConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEnsureUser creates a properly initialized EnsureUser command.
func NewEnsureUser(ensurer datasources.UserEnsurer, config domain.TasteConfig, rng *rand.Rand) *EnsureUser {
	return &EnsureUser{
		Ensurer: ensurer,
		Config:  config,
		rng:     rng,
	}
}

// Execute inserts the user with a cold-start taste vector. Existing users are left untouched.
func (c *EnsureUser) Execute(ctx context.Context, identity domain.Identity) (EnsureUserResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if identity.UserID == "" {
		return EnsureUserResult{}, fmt.Errorf("ensuring user: empty user ID")
	}

	c.mu.Lock()
	vector := c.Config.InitialTasteVector(c.rng)
	c.mu.Unlock()

	created, err := c.Ensurer.EnsureUser(ctx, identity, vector)
	if err != nil {
		return EnsureUserResult{}, fmt.Errorf("ensuring user: %w", err)
	}

	if created {
		logger.InfoContext(ctx, "created user", "user_id", identity.UserID, "cold_start", c.Config.ColdStart)
	}
	return EnsureUserResult{Created: created}, nil
}
