package main

import (
	"testing"

	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	restaurantID := uuid.New()

	cmd, err := parseCommand([]string{"cleanup-identifiers", "-restaurant", restaurantID.String(), "-keep", "3"})
	require.NoError(t, err)
	assert.Equal(t, usecase.JobCleanupIdentifiers, cmd.Job)
	assert.Equal(t, restaurantID, *cmd.RestaurantID)
	assert.Equal(t, 3, *cmd.KeepCount)

	cmd, err = parseCommand([]string{"expire-redemptions"})
	require.NoError(t, err)
	assert.Nil(t, cmd.RestaurantID)
	assert.Nil(t, cmd.KeepCount)

	_, err = parseCommand([]string{"rotate-codes"})
	assert.ErrorContains(t, err, "requires -restaurant")

	_, err = parseCommand([]string{"rotate-codes", "-restaurant", "nope"})
	assert.Error(t, err)

	_, err = parseCommand([]string{"reindex"})
	assert.Error(t, err)

	_, err = parseCommand(nil)
	assert.Error(t, err)
}
