// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

package store

import (
	"context"
	"fmt"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
)

const (
	demoUsername = "admin"
	demoPassword = "admin"
)

// seedDemoUser creates the demo account when no user exists yet.
func seedDemoUser(ctx context.Context, db *DB) error {
	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeedingDemoUser, err)
	}

	result, err := db.ExecContext(ctx, seedUser, demoUsername, hash)
	if err != nil {
		db.logger.Err(err).Str("func", "seedDemoUser").Msg("error inserting demo user")
		return fmt.Errorf("%w: %w", ErrSeedingDemoUser, err)
	}

	if affected, _ := result.RowsAffected(); affected > 0 {
		db.logger.Info().Str("func", "seedDemoUser").Str("username", demoUsername).Msg("demo user created")
	}

	return nil
}
