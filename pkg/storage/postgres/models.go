package postgres

import (
	"countries/pkg/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgPreference struct {
	UserID    uuid.UUID `db:"user_id"`
	DarkMode  bool      `db:"dark_mode"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPreference) ToDomain() *domain.Preference {
	return &domain.Preference{
		UserID:    domain.UserID(p.UserID),
		DarkMode:  p.DarkMode,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgPreference) FromDomain(pref domain.Preference) {
	*p = PgPreference{
		UserID:   uuid.UUID(pref.UserID),
		DarkMode: pref.DarkMode,
	}
}

type PgSnapshotRow struct {
	Position  int             `db:"position"`
	Name      string          `db:"name"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSnapshotRow) ToDomain() (*domain.Country, error) {
	var c domain.Country
	if err := json.Unmarshal(p.Payload, &c); err != nil {
		return nil, fmt.Errorf("could not unmarshal snapshot payload: %w", err)
	}

	return &c, nil
}

func domainCountriesToPg(list domain.CountryList) ([]PgSnapshotRow, error) {
	out := make([]PgSnapshotRow, len(list))
	for i := range list {
		payload, err := json.Marshal(list[i])
		if err != nil {
			return nil, fmt.Errorf("could not marshal snapshot payload: %w", err)
		}

		out[i] = PgSnapshotRow{
			Position: i,
			Name:     list[i].Name,
			Payload:  payload,
		}
	}

	return out, nil
}
