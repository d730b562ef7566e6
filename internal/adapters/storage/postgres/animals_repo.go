package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-api/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, animal_id,
			species, breed, gender, colour,
			age_in_years, weight_in_kgs,
			distinctive_features, micro_chipped, is_mix,
			intake_type, month_of_intake,
			registered_by, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		a.ID,
		a.AnimalID,
		a.Species,
		a.Breed,
		a.Gender,
		a.Colour,
		a.AgeInYears,
		a.WeightInKgs,
		a.DistinctiveFeatures,
		a.MicroChipped,
		a.IsMix,
		a.IntakeType,
		a.MonthOfIntake,
		a.RegisteredBy,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapErr(err, "animal_id")
}

const selectAnimal = `
	SELECT
		id, animal_id,
		species, breed, gender, colour,
		age_in_years, weight_in_kgs,
		distinctive_features, micro_chipped, is_mix,
		intake_type, month_of_intake,
		registered_by, created_at, updated_at
	FROM animals
`

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row scanner) (animals.Animal, error) {
	var a animals.Animal
	err := row.Scan(
		&a.ID,
		&a.AnimalID,
		&a.Species,
		&a.Breed,
		&a.Gender,
		&a.Colour,
		&a.AgeInYears,
		&a.WeightInKgs,
		&a.DistinctiveFeatures,
		&a.MicroChipped,
		&a.IsMix,
		&a.IntakeType,
		&a.MonthOfIntake,
		&a.RegisteredBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	a, err := scanAnimal(r.db.QueryRowContext(ctx, selectAnimal+` WHERE id = $1`, id))
	if err != nil {
		return animals.Animal{}, mapErr(err, "animal")
	}
	return a, nil
}

func (r *AnimalsRepo) GetByAnimalID(ctx context.Context, animalID string) (animals.Animal, error) {
	a, err := scanAnimal(r.db.QueryRowContext(ctx, selectAnimal+` WHERE animal_id = $1`, animalID))
	if err != nil {
		return animals.Animal{}, mapErr(err, "animal")
	}
	return a, nil
}

// List pagina por seq (orden de inserción).
func (r *AnimalsRepo) List(ctx context.Context, offset, limit int) ([]animals.Animal, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animals`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, selectAnimal+`
		ORDER BY seq ASC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0, limit)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

// Delete: las FKs ON DELETE CASCADE / SET NULL se encargan de las fichas.
func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
