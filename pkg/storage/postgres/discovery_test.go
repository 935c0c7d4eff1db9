package postgres_test

import (
	"context"
	"mailscout/pkg/domain"
	"mailscout/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func pendingDiscovery(userID domain.UserID, targetKey string) domain.Discovery {
	return domain.Discovery{
		UserID: userID,
		Target: domain.TargetDescriptor{
			CompanyName: "Acme Corp",
			Domain:      targetKey,
		},
		TargetKey: targetKey,
		Status:    domain.DiscoveryStatusPending,
	}
}

func TestPgSQL_StoreDiscoveries(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("store single discovery", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDiscoveries(ctx, pendingDiscovery(userID, "acme.com"))
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "acme.com", res[0].TargetKey)
		require.Equal(t, "Acme Corp", res[0].Target.CompanyName)
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple discoveries", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDiscoveries(ctx,
			pendingDiscovery(userID, "acme.com"),
			pendingDiscovery(userID, "globex.com"),
		)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty discoveries", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDiscoveries(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdatePendingByTargetKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	keyA := "update-a.com"
	keyB := "update-b.com"

	// two pending runs for keyA from different requests, one already completed,
	// and one pending run for keyB
	d1 := pendingDiscovery(userID, keyA)
	d2 := pendingDiscovery(userID, keyA)
	d3 := pendingDiscovery(userID, keyA)
	d3.Status = domain.DiscoveryStatusCompleted
	d4 := pendingDiscovery(userID, keyB)
	ins, err := pgSQL.StoreDiscoveries(ctx, d1, d2, d3, d4)
	require.NoError(t, err)
	require.Len(t, ins, 4)

	empty := ""
	err = pgSQL.UpdatePendingByTargetKey(ctx, keyA, storage.DiscoveryUpdates{
		Status:    domain.DiscoveryStatusCompleted,
		Result:    &domain.DiscoveryResult{Stats: domain.DiscoveryStats{PagesFetched: 2}},
		LastError: &empty, // clear last_error to NULL
	})
	require.NoError(t, err)

	page, err := pgSQL.UserDiscoveries(ctx, userID, "", time.Time{}, 50)
	require.NoError(t, err)

	byID := map[uuid.UUID]domain.Discovery{}
	for _, d := range page.Discoveries {
		byID[uuid.UUID(d.ID)] = d
	}

	// d1, d2 updated
	for i := range 2 {
		d := byID[uuid.UUID(ins[i].ID)]
		require.Equal(t, domain.DiscoveryStatusCompleted, d.Status)
		require.EqualValues(t, 1, d.Attempts)
		require.Equal(t, 2, d.Result.Stats.PagesFetched)
		require.False(t, d.UpdatedAt.IsZero())
		require.Empty(t, d.LastError)
	}
	// d3 (already completed) keeps attempts 0
	require.EqualValues(t, 0, byID[uuid.UUID(ins[2].ID)].Attempts)
	// d4 for keyB stays pending
	require.Equal(t, domain.DiscoveryStatusPending, byID[uuid.UUID(ins[3].ID)].Status)
}

func TestPgSQL_UpdatePendingByTargetKey_FailedGuardedByMaxAttempts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	key := "flaky.com"

	ins, err := pgSQL.StoreDiscoveries(ctx, pendingDiscovery(userID, key))
	require.NoError(t, err)
	id := ins[0].ID

	errMsg := "could not fetch pages"
	updates := storage.DiscoveryUpdates{
		Status:      domain.DiscoveryStatusFailed,
		LastError:   &errMsg,
		MaxAttempts: 2,
	}

	// first failure keeps the run pending for a retry
	require.NoError(t, pgSQL.UpdatePendingByTargetKey(ctx, key, updates))
	got, err := pgSQL.DiscoveryByID(ctx, userID, id)
	require.NoError(t, err)
	require.Equal(t, domain.DiscoveryStatusPending, got.Status)
	require.EqualValues(t, 1, got.Attempts)
	require.Equal(t, errMsg, got.LastError)

	// second failure reaches MaxAttempts and marks it failed
	require.NoError(t, pgSQL.UpdatePendingByTargetKey(ctx, key, updates))
	got, err = pgSQL.DiscoveryByID(ctx, userID, id)
	require.NoError(t, err)
	require.Equal(t, domain.DiscoveryStatusFailed, got.Status)
	require.EqualValues(t, 2, got.Attempts)
}

func TestPgSQL_PendingCountByTargetKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())
	key := "count.com"

	completed := pendingDiscovery(userA, key)
	completed.Status = domain.DiscoveryStatusCompleted
	ins, err := pgSQL.StoreDiscoveries(ctx,
		pendingDiscovery(userA, key),
		pendingDiscovery(userB, key),
		completed,
	)
	require.NoError(t, err)
	require.Len(t, ins, 3)

	// pending runs are counted across users
	count, err := pgSQL.PendingCountByTargetKey(ctx, key)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	// soft-deleted rows are excluded
	_, err = pgSQL.DeleteDiscovery(ctx, userA, ins[0].ID)
	require.NoError(t, err)
	count, err = pgSQL.PendingCountByTargetKey(ctx, key)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = pgSQL.PendingCountByTargetKey(ctx, "missing.com")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestPgSQL_UpdateDiscoveryByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ins, err := pgSQL.StoreDiscoveries(ctx, pendingDiscovery(userID, "byid.com"))
	require.NoError(t, err)

	result := domain.DiscoveryResult{
		Emails: []domain.EmailHit{{Address: "info@byid.com", Confidence: 80}},
		Stats:  domain.DiscoveryStats{SourcesQueried: 3},
	}
	updated, err := pgSQL.UpdateDiscoveryByID(ctx, ins[0].ID, storage.DiscoveryUpdates{
		Status: domain.DiscoveryStatusCompleted,
		Result: &result,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.DiscoveryStatusCompleted, updated.Status)
	require.Len(t, updated.Result.Emails, 1)
	require.Equal(t, "info@byid.com", updated.Result.Emails[0].Address)

	// unknown id returns nil without error
	missing, err := pgSQL.UpdateDiscoveryByID(ctx, domain.DiscoveryID(uuid.New()), storage.DiscoveryUpdates{
		Status: domain.DiscoveryStatusCompleted,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteDiscovery(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreDiscoveries(ctx, pendingDiscovery(userID, "delete.me"))
	require.NoError(t, err)
	require.Len(t, stored, 1)
	id := stored[0].ID

	// delete
	deleted, err := pgSQL.DeleteDiscovery(ctx, userID, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)
	// fetching by id should return nil
	got, err := pgSQL.DiscoveryByID(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, got)
	// listing should not include it
	page, err := pgSQL.UserDiscoveries(ctx, userID, "", time.Time{}, 10)
	require.NoError(t, err)
	for _, d := range page.Discoveries {
		require.NotEqual(t, id, d.ID)
	}
	// deleting again should not error
	deleted2, err := pgSQL.DeleteDiscovery(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, deleted2)
}

func TestPgSQL_UserDiscoveries_PaginationAndStatusFilter(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	discoveries := make([]domain.Discovery, 0, 5)
	for range 5 {
		discoveries = append(discoveries, pendingDiscovery(userID, "page-"+uuid.NewString()+".com"))
	}
	discoveries[4].Status = domain.DiscoveryStatusCompleted
	stored, err := pgSQL.StoreDiscoveries(ctx, discoveries...)
	require.NoError(t, err)
	require.Len(t, stored, 5)

	// adjust created_at to be deterministic descending: now, now-1m, ...
	now := time.Now().UTC()
	for i, d := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute) // stored order is same as input; make last newest
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE discoveries SET created_at = $1 WHERE id = $2", created, uuid.UUID(d.ID))
		require.NoError(t, err)
	}

	// first page, limit 2
	p1, err := pgSQL.UserDiscoveries(ctx, userID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Discoveries, 2)
	require.NotNil(t, p1.NextCursor)

	// second page
	p2, err := pgSQL.UserDiscoveries(ctx, userID, "", *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Discoveries, 2)
	require.NotNil(t, p2.NextCursor)

	// third (last) page, should have 1 left and no next cursor
	p3, err := pgSQL.UserDiscoveries(ctx, userID, "", *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Discoveries, 1)
	require.Nil(t, p3.NextCursor)

	// status filter only returns the completed run
	filtered, err := pgSQL.UserDiscoveries(ctx, userID, domain.DiscoveryStatusCompleted, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, filtered.Discoveries, 1)
	require.Equal(t, stored[4].ID, filtered.Discoveries[0].ID)
}

func TestPgSQL_DiscoveryByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())
	storedA, err := pgSQL.StoreDiscoveries(ctx, pendingDiscovery(userA, "id-a.com"))
	require.NoError(t, err)
	storedB, err := pgSQL.StoreDiscoveries(ctx, pendingDiscovery(userB, "id-b.com"))
	require.NoError(t, err)
	idA := storedA[0].ID
	idB := storedB[0].ID

	// correct user & id
	got, err := pgSQL.DiscoveryByID(ctx, userA, idA)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, idA, got.ID)

	// wrong user should not see another user's discovery
	got2, err := pgSQL.DiscoveryByID(ctx, userA, idB)
	require.NoError(t, err)
	require.Nil(t, got2)

	// soft delete and ensure not returned
	_, err = pgSQL.DeleteDiscovery(ctx, userA, idA)
	require.NoError(t, err)
	got3, err := pgSQL.DiscoveryByID(ctx, userA, idA)
	require.NoError(t, err)
	require.Nil(t, got3)
}

func TestPgSQL_LastCompletedByTargetKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	key := "last.com"

	// none yet
	got, err := pgSQL.LastCompletedByTargetKey(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)

	ins, err := pgSQL.StoreDiscoveries(ctx,
		pendingDiscovery(userID, key),
		pendingDiscovery(userID, key),
	)
	require.NoError(t, err)

	first, err := pgSQL.UpdateDiscoveryByID(ctx, ins[0].ID, storage.DiscoveryUpdates{
		Status: domain.DiscoveryStatusCompleted,
		Result: &domain.DiscoveryResult{Stats: domain.DiscoveryStats{PagesFetched: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := pgSQL.UpdateDiscoveryByID(ctx, ins[1].ID, storage.DiscoveryUpdates{
		Status: domain.DiscoveryStatusCompleted,
		Result: &domain.DiscoveryResult{Stats: domain.DiscoveryStats{PagesFetched: 9}},
	})
	require.NoError(t, err)
	require.NotNil(t, second)

	// force a strict updated_at ordering, CURRENT_TIMESTAMP may tie within a tx
	_, err = pgSQL.DB.ExecContext(ctx,
		"UPDATE discoveries SET updated_at = updated_at + interval '1 minute' WHERE id = $1",
		uuid.UUID(second.ID))
	require.NoError(t, err)

	got, err = pgSQL.LastCompletedByTargetKey(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, second.ID, got.ID)
	require.Equal(t, 9, got.Result.Stats.PagesFetched)
}
