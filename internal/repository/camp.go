package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/internal/service"
)

const campColumns = `id, camp_name, date_time, location, fees, description, image,
	professional_name, participant_count, created_at`

var campOrder = map[service.CampSort]string{
	service.SortNone:             "created_at ASC",
	service.SortMostRegistered:   "participant_count DESC",
	service.SortCampFees:         "fees ASC",
	service.SortAlphabeticalName: "camp_name ASC",
}

// CampRepository handles persistence for camps, including the participant
// counter.
type CampRepository struct {
	db *pgxpool.Pool
}

// NewCampRepository constructs a CampRepository.
func NewCampRepository(db *pgxpool.Pool) *CampRepository {
	return &CampRepository{db: db}
}

// Create inserts a new camp with a generated UUID.
func (r *CampRepository) Create(ctx context.Context, req model.CampRequest) (model.InsertResult, error) {
	id := uuid.New().String()
	_, err := r.db.Exec(ctx,
		`INSERT INTO camps (id, camp_name, date_time, location, fees, description, image,
		                    professional_name, participant_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, req.CampName, req.DateTime, req.Location, req.Fees, req.Description, req.Image,
		req.ProfessionalName, req.ParticipantCount, time.Now().UTC(),
	)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert camp: %w", err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// GetByID returns a single camp or ErrNotFound.
func (r *CampRepository) GetByID(ctx context.Context, id string) (*model.Camp, error) {
	c, err := scanCamp(r.db.QueryRow(ctx,
		`SELECT `+campColumns+` FROM camps WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get camp: %w", err)
	}
	return c, nil
}

// Search matches camp name, location or date against search, case-insensitively.
func (r *CampRepository) Search(ctx context.Context, search string, sort service.CampSort) ([]model.Camp, error) {
	order, ok := campOrder[sort]
	if !ok {
		order = campOrder[service.SortNone]
	}
	return r.list(ctx,
		`SELECT `+campColumns+` FROM camps
		 WHERE camp_name ILIKE $1 OR location ILIKE $1 OR date_time ILIKE $1
		 ORDER BY `+order,
		containsPattern(search),
	)
}

// SearchManaged matches camp name, date or professional name against search.
func (r *CampRepository) SearchManaged(ctx context.Context, search string) ([]model.Camp, error) {
	return r.list(ctx,
		`SELECT `+campColumns+` FROM camps
		 WHERE camp_name ILIKE $1 OR date_time ILIKE $1 OR professional_name ILIKE $1
		 ORDER BY created_at ASC`,
		containsPattern(search),
	)
}

// TopByParticipants returns up to limit camps with the highest counts.
func (r *CampRepository) TopByParticipants(ctx context.Context, limit int) ([]model.Camp, error) {
	return r.list(ctx,
		`SELECT `+campColumns+` FROM camps ORDER BY participant_count DESC, created_at ASC LIMIT $1`,
		limit,
	)
}

// Upsert replaces the editable fields of camp id, inserting the camp if it
// does not exist.
func (r *CampRepository) Upsert(ctx context.Context, id string, req model.CampRequest) (model.UpdateResult, error) {
	var inserted bool
	err := r.db.QueryRow(ctx,
		`INSERT INTO camps (id, camp_name, date_time, location, fees, description, image,
		                    professional_name, participant_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		     camp_name = EXCLUDED.camp_name,
		     date_time = EXCLUDED.date_time,
		     location = EXCLUDED.location,
		     fees = EXCLUDED.fees,
		     description = EXCLUDED.description,
		     image = EXCLUDED.image,
		     professional_name = EXCLUDED.professional_name,
		     participant_count = EXCLUDED.participant_count
		 RETURNING (xmax = 0)`,
		id, req.CampName, req.DateTime, req.Location, req.Fees, req.Description, req.Image,
		req.ProfessionalName, req.ParticipantCount, time.Now().UTC(),
	).Scan(&inserted)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("upsert camp: %w", err)
	}
	if inserted {
		return model.UpdateResult{Acknowledged: true, UpsertedID: id}, nil
	}
	return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// Delete removes a camp. Registrations that reference it are untouched.
func (r *CampRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM camps WHERE id = $1`, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete camp: %w", err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

// Increment adds by to the camp's participant count in a single statement,
// so concurrent joins cannot lose updates. An unknown camp id matches
// nothing and is not an error.
func (r *CampRepository) Increment(ctx context.Context, campID string, by int) (model.UpdateResult, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE camps SET participant_count = participant_count + $2 WHERE id = $1`,
		campID, by,
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("increment participant_count: %w", err)
	}
	n := tag.RowsAffected()
	return model.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (r *CampRepository) list(ctx context.Context, query string, args ...any) ([]model.Camp, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list camps: %w", err)
	}
	defer rows.Close()

	var camps []model.Camp
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("scan camp: %w", err)
		}
		camps = append(camps, *c)
	}
	return camps, rows.Err()
}

func scanCamp(row pgx.Row) (*model.Camp, error) {
	var c model.Camp
	err := row.Scan(&c.ID, &c.CampName, &c.DateTime, &c.Location, &c.Fees, &c.Description,
		&c.Image, &c.ProfessionalName, &c.ParticipantCount, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
