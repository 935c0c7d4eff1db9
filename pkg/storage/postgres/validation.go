package postgres

import (
	"context"
	"fmt"
	"mailscout/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	validationsTable = "validations"
)

// UpsertValidation stores a validation verdict, replacing any previous row
// for the same address.
func (p *PgSQL) UpsertValidation(ctx context.Context, result domain.ValidationResult) error {
	var row PgValidation
	if err := row.FromDomain(result); err != nil {
		return err
	}

	_, err := p.Builder.Insert(validationsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("address", goqu.Record{
			"result":     row.Result,
			"checked_at": row.CheckedAt,
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert validation in pg: %w", err)
	}

	return nil
}

// ValidationByAddress returns the stored verdict for an address when it was
// checked at or after notBefore, or nil when no usable row exists.
func (p *PgSQL) ValidationByAddress(
	ctx context.Context,
	address string,
	notBefore time.Time,
) (*domain.ValidationResult, error) {
	var row PgValidation
	found, err := p.Builder.From(validationsTable).
		Where(
			goqu.I("address").Eq(address),
			goqu.I("checked_at").Gte(notBefore),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch validation by address: %w", err)
	}

	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
