package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"mailscout/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgDiscovery struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	TargetKey string          `db:"target_key"`
	Target    json.RawMessage `db:"target"`
	Status    string          `db:"status"`
	Result    json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgDiscovery) ToDomain() (*domain.Discovery, error) {
	var target domain.TargetDescriptor
	if err := json.Unmarshal(p.Target, &target); err != nil {
		return nil, fmt.Errorf("could not unmarshal discovery target: %w", err)
	}

	var result domain.DiscoveryResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal discovery result: %w", err)
	}

	return &domain.Discovery{
		ID:        domain.DiscoveryID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Target:    target,
		TargetKey: p.TargetKey,
		Status:    domain.DiscoveryStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgDiscovery) FromDomain(discovery domain.Discovery) error {
	target, err := json.Marshal(discovery.Target)
	if err != nil {
		return fmt.Errorf("could not marshal discovery target: %w", err)
	}

	result, err := json.Marshal(discovery.Result)
	if err != nil {
		return fmt.Errorf("could not marshal discovery result: %w", err)
	}

	*p = PgDiscovery{
		ID:        uuid.UUID(discovery.ID),
		UserID:    uuid.UUID(discovery.UserID),
		TargetKey: discovery.TargetKey,
		Target:    target,
		Status:    string(discovery.Status),
		Result:    result,
		Attempts:  discovery.Attempts,
		LastError: sql.NullString{
			String: discovery.LastError,
			Valid:  discovery.LastError != "",
		},
		CreatedAt: discovery.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  discovery.UpdatedAt,
			Valid: !discovery.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  discovery.DeletedAt,
			Valid: !discovery.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainDiscoveriesToPg(discoveries []domain.Discovery) ([]PgDiscovery, error) {
	out := make([]PgDiscovery, len(discoveries))
	for i := range out {
		if err := out[i].FromDomain(discoveries[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgDiscoveriesToDomain(discoveries []PgDiscovery) ([]domain.Discovery, error) {
	out := make([]domain.Discovery, 0, len(discoveries))
	for _, d := range discoveries {
		converted, err := d.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *converted)
	}

	return out, nil
}

type PgValidation struct {
	Address   string          `db:"address"`
	Result    json.RawMessage `db:"result"`
	CheckedAt time.Time       `db:"checked_at"`
}

func (p *PgValidation) ToDomain() (*domain.ValidationResult, error) {
	var result domain.ValidationResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal validation result: %w", err)
	}

	return &result, nil
}

func (p *PgValidation) FromDomain(result domain.ValidationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal validation result: %w", err)
	}

	*p = PgValidation{
		Address:   result.Address,
		Result:    payload,
		CheckedAt: result.CheckedAt,
	}

	return nil
}
