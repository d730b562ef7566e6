package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-api/internal/domain/adopters"
	"animal-shelter-api/internal/domain/inspections"
)

type AdoptersRepo struct {
	db *sql.DB
}

func NewAdoptersRepo(db *sql.DB) *AdoptersRepo {
	return &AdoptersRepo{db: db}
}

func (r *AdoptersRepo) Create(ctx context.Context, a adopters.Adopter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adopters (
			id, user_id, animal_id,
			home_type, has_yard, household_size,
			has_other_pets, other_pets_details, experience_with_pets,
			notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.UserID,
		nullString(a.AnimalID),
		a.HomeType,
		a.HasYard,
		a.HouseholdSize,
		a.HasOtherPets,
		a.OtherPetsDetails,
		a.ExperienceWithPets,
		a.Notes,
		a.CreatedAt,
	)
	return mapErr(err, "adopter")
}

func (r *AdoptersRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	var a adopters.Adopter
	var animalID sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id, animal_id,
			home_type, has_yard, household_size,
			has_other_pets, other_pets_details, experience_with_pets,
			notes, created_at
		FROM adopters
		WHERE id = $1
	`, id).Scan(
		&a.ID,
		&a.UserID,
		&animalID,
		&a.HomeType,
		&a.HasYard,
		&a.HouseholdSize,
		&a.HasOtherPets,
		&a.OtherPetsDetails,
		&a.ExperienceWithPets,
		&a.Notes,
		&a.CreatedAt,
	)
	if err != nil {
		return adopters.Adopter{}, mapErr(err, "adopter")
	}
	a.AnimalID = animalID.String
	return a, nil
}

func (r *AdoptersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adopters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type InspectionsRepo struct {
	db *sql.DB
}

func NewInspectionsRepo(db *sql.DB) *InspectionsRepo {
	return &InspectionsRepo{db: db}
}

func (r *InspectionsRepo) Create(ctx context.Context, in inspections.Inspection) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inspections (
			id, adopter_id, inspector_id, scheduled_for, result, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		in.ID,
		in.AdopterID,
		nullString(in.InspectorID),
		in.ScheduledFor,
		in.Result,
		in.Notes,
		in.CreatedAt,
	)
	return mapErr(err, "inspection")
}

func (r *InspectionsRepo) ListByAdopter(ctx context.Context, adopterID string) ([]inspections.Inspection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, adopter_id, inspector_id, scheduled_for, result, notes, created_at
		FROM inspections
		WHERE adopter_id = $1
		ORDER BY seq ASC
	`, adopterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inspections.Inspection, 0)
	for rows.Next() {
		var in inspections.Inspection
		var by sql.NullString
		if err := rows.Scan(
			&in.ID,
			&in.AdopterID,
			&by,
			&in.ScheduledFor,
			&in.Result,
			&in.Notes,
			&in.CreatedAt,
		); err != nil {
			return nil, err
		}
		in.InspectorID = by.String
		out = append(out, in)
	}
	return out, rows.Err()
}
