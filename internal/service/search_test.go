package service

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsersBlankQuery(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)
	alice := createUser(t, db, "alice")
	createUser(t, db, "bob")

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := svc.SearchUsers(context.Background(), alice.ID, query)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.NotNil(t, results, "blank query returns an empty list, not null")
	}
}

func TestSearchUsersExactIDShortCircuits(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	results, err := svc.SearchUsers(ctx, alice.ID, strconv.Itoa(int(bob.ID)))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bob.ID, results[0].ID)
	assert.Equal(t, "bob", results[0].FullName)

	// Searching your own id is a miss, not a self entry.
	results, err = svc.SearchUsers(ctx, alice.ID, strconv.Itoa(int(alice.ID)))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchUsersIDMissFallsThroughToNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)
	alice := createUser(t, db, "alice")
	numeric := createUser(t, db, "agent 99999")

	// No user has id 99999, but a name contains it.
	results, err := svc.SearchUsers(context.Background(), alice.ID, "99999")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, numeric.ID, results[0].ID)
}

func TestSearchUsersSubstringExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice cooper")
	bob := createUser(t, db, "bob alicesson")
	createUser(t, db, "carol")

	results, err := svc.SearchUsers(ctx, alice.ID, "alice")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bob.ID, results[0].ID)

	// Email matches too; helper emails embed the name.
	results, err = svc.SearchUsers(ctx, alice.ID, "carol")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "carol", results[0].FullName)
}

func TestSearchUsersCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)
	alice := createUser(t, db, "alice")
	for i := 0; i < maxSearchResults+5; i++ {
		createUser(t, db, fmt.Sprintf("classmate %02d", i))
	}

	results, err := svc.SearchUsers(context.Background(), alice.ID, "classmate")
	require.NoError(t, err)
	assert.Len(t, results, maxSearchResults)
}
