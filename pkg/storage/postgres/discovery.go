package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"mailscout/pkg/domain"
	"mailscout/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	discoveriesTable = "discoveries"
)

func (p *PgSQL) StoreDiscoveries(ctx context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
	if len(discoveries) == 0 {
		return nil, nil
	}

	pgDiscoveries, err := domainDiscoveriesToPg(discoveries)
	if err != nil {
		return nil, err
	}

	var result []PgDiscovery
	if err := p.Builder.Insert(discoveriesTable).
		Rows(pgDiscoveries).
		Returning(&PgDiscovery{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store discoveries into pg: %w", err)
	}

	return pgDiscoveriesToDomain(result)
}

// updateRecord builds the shared goqu record for discovery updates. Attempts
// is incremented and updated_at refreshed on every update; the Failed status
// is guarded by MaxAttempts when provided.
func updateRecord(updates storage.DiscoveryUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}

	if updates.Status == domain.DiscoveryStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.DiscoveryStatusFailed))
	}

	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}

	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingByTargetKey updates all pending discoveries for the given
// target key with the provided fields.
func (p *PgSQL) UpdatePendingByTargetKey(ctx context.Context, targetKey string, updates storage.DiscoveryUpdates) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(discoveriesTable).
		Set(rec).Where(
		goqu.I("target_key").Eq(targetKey),
		goqu.I("status").Eq(string(domain.DiscoveryStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending discoveries by target key in pg: %w", err)
	}

	return nil
}

// PendingCountByTargetKey counts pending, non-deleted discoveries for a
// target key across all users.
func (p *PgSQL) PendingCountByTargetKey(ctx context.Context, targetKey string) (int64, error) {
	count, err := p.Builder.From(discoveriesTable).
		Where(
			goqu.I("target_key").Eq(targetKey),
			goqu.I("status").Eq(string(domain.DiscoveryStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending discoveries in pg: %w", err)
	}

	return count, nil
}

// UpdateDiscoveryByID updates a single discovery and returns the updated row,
// or nil when it does not exist.
func (p *PgSQL) UpdateDiscoveryByID(
	ctx context.Context,
	id domain.DiscoveryID,
	updates storage.DiscoveryUpdates,
) (*domain.Discovery, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgDiscovery
	found, err := p.Builder.Update(discoveriesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDiscovery{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update discovery by id in pg: %w", err)
	}

	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteDiscovery performs a soft delete by setting deleted_at timestamp
// for a given discovery id and user, returning the deleted record.
func (p *PgSQL) DeleteDiscovery(
	ctx context.Context,
	userID domain.UserID,
	id domain.DiscoveryID,
) (*domain.Discovery, error) {
	var row PgDiscovery
	found, err := p.Builder.Update(discoveriesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDiscovery{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete discovery in pg: %w", err)
	}

	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserDiscoveries returns a page of discoveries for a user filtered by an
// optional status and cursor, limited by limit. Results are ordered by
// created_at DESC, id DESC. Returns the next cursor for pagination.
func (p *PgSQL) UserDiscoveries(ctx context.Context,
	userID domain.UserID,
	status domain.DiscoveryStatus,
	cursor time.Time,
	limit uint) (storage.UserDiscoveries, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}

	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(discoveriesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgDiscovery
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserDiscoveries{}, fmt.Errorf("could not fetch user discoveries from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgDiscoveriesToDomain(rows)
	if err != nil {
		return storage.UserDiscoveries{}, err
	}

	return storage.UserDiscoveries{
		Discoveries: domainRows,
		NextCursor:  nextCursor,
	}, nil
}

// DiscoveryByID returns a discovery by its ID, excluding soft-deleted rows.
func (p *PgSQL) DiscoveryByID(
	ctx context.Context,
	userID domain.UserID,
	id domain.DiscoveryID,
) (*domain.Discovery, error) {
	var row PgDiscovery
	found, err := p.Builder.From(discoveriesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch discovery by id: %w", err)
	}

	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastCompletedByTargetKey returns the most recent completed discovery for a
// target key across all users, or nil when none exists.
func (p *PgSQL) LastCompletedByTargetKey(ctx context.Context, targetKey string) (*domain.Discovery, error) {
	var row PgDiscovery
	found, err := p.Builder.From(discoveriesTable).
		Where(
			goqu.I("target_key").Eq(targetKey),
			goqu.I("status").Eq(string(domain.DiscoveryStatusCompleted)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed discovery: %w", err)
	}

	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
