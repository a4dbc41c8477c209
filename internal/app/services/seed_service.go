package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mertkaya/gradekeeper/internal/app/repositories"
	"github.com/mertkaya/gradekeeper/internal/db"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
	"github.com/mertkaya/gradekeeper/internal/seed"
	"github.com/rs/zerolog"
)

// SeedService defines the interface for the destructive sample data generator.
type SeedService interface {
	Run(ctx context.Context) (*seed.Result, error)
}

// seedServiceImpl implements the SeedService interface. The whole generator
// run executes inside one transaction: a failure rolls back the truncation
// and leaves prior data intact. The mutex serializes invocations within this
// process; the generator is not safe for concurrent runs.
type seedServiceImpl struct {
	database *db.PostgresDB
	mode     string
	lgr      zerolog.Logger

	mu sync.Mutex
}

// NewSeedService creates a new seed service instance. mode is the server
// mode from configuration; "production" disables the generator.
func NewSeedService(database *db.PostgresDB, mode string, lgr zerolog.Logger) SeedService {
	return &seedServiceImpl{
		database: database,
		mode:     mode,
		lgr:      lgr,
	}
}

// Run wipes and repopulates the dataset with synthetic rows.
func (s *seedServiceImpl) Run(ctx context.Context) (*seed.Result, error) {
	if strings.EqualFold(s.mode, "production") {
		return nil, apperrors.ErrSeedDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result *seed.Result
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := repositories.NewSeedStore(tx)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		seeder := seed.NewSeeder(store, rng, s.lgr)

		var runErr error
		result, runErr = seeder.Run(ctx)
		return runErr
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
