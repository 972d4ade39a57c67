package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecomdash/product-dashboard/internal/models"
)

func TestCreateUserAndLookup(t *testing.T) {
	r := newTestRepo(t)

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: "user"}
	require.NoError(t, r.CreateUser(context.Background(), &user))
	require.NotZero(t, user.ID)

	byEmail, err := r.UserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	byID, err := r.UserByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := newTestRepo(t)

	first := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: "user"}
	require.NoError(t, r.CreateUser(context.Background(), &first))

	dup := models.User{Username: "alice2", Email: "alice@example.com", PasswordHash: "y", Role: "user"}
	err := r.CreateUser(context.Background(), &dup)
	require.ErrorIs(t, err, models.ErrUserExists)
}

func TestUserLookupNotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.UserByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, models.ErrNotFound)

	_, err = r.UserByID(context.Background(), 404)
	require.ErrorIs(t, err, models.ErrNotFound)
}
