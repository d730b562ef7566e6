package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-api/internal/domain/assessments"
	"animal-shelter-api/internal/domain/health"
	"animal-shelter-api/internal/domain/outcomes"
	"animal-shelter-api/internal/domain/owners"
)

// Fichas que cuelgan de animals(id). Todas se listan por seq.

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (
			id, animal_id,
			health_status, vaccination_status, parasite_control, temperament,
			current_medications, known_medical_conditions, allergies,
			any_aggressive_incidents, is_neutered, is_injured, is_rabid,
			other_observations, recorded_by, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		rec.ID,
		rec.AnimalID,
		rec.HealthStatus,
		rec.VaccinationStatus,
		rec.ParasiteControl,
		rec.Temperament,
		rec.CurrentMedications,
		rec.KnownMedicalConditions,
		rec.Allergies,
		rec.AnyAggressiveIncidents,
		rec.IsNeutered,
		rec.IsInjured,
		rec.IsRabid,
		rec.OtherObservations,
		nullString(rec.RecordedBy),
		rec.CreatedAt,
	)
	return mapErr(err, "health record")
}

func (r *HealthRepo) ListByAnimal(ctx context.Context, animalID string) ([]health.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, animal_id,
			health_status, vaccination_status, parasite_control, temperament,
			current_medications, known_medical_conditions, allergies,
			any_aggressive_incidents, is_neutered, is_injured, is_rabid,
			other_observations, recorded_by, created_at
		FROM health_records
		WHERE animal_id = $1
		ORDER BY seq ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Record, 0)
	for rows.Next() {
		var rec health.Record
		var by sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.AnimalID,
			&rec.HealthStatus,
			&rec.VaccinationStatus,
			&rec.ParasiteControl,
			&rec.Temperament,
			&rec.CurrentMedications,
			&rec.KnownMedicalConditions,
			&rec.Allergies,
			&rec.AnyAggressiveIncidents,
			&rec.IsNeutered,
			&rec.IsInjured,
			&rec.IsRabid,
			&rec.OtherObservations,
			&by,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.RecordedBy = by.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, p owners.PreviousOwner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO previous_owners (
			id, animal_id, previous_owner_known, name,
			reason_for_intake, los_with_owners_in_years, previous_veterinary_clinic,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.AnimalID,
		p.PreviousOwnerKnown,
		p.Name,
		p.ReasonForIntake,
		p.LengthOfStayYears,
		p.PreviousVeterinaryClinic,
		p.CreatedAt,
	)
	return mapErr(err, "previous owner")
}

func (r *OwnersRepo) ListByAnimal(ctx context.Context, animalID string) ([]owners.PreviousOwner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, animal_id, previous_owner_known, name,
			reason_for_intake, los_with_owners_in_years, previous_veterinary_clinic,
			created_at
		FROM previous_owners
		WHERE animal_id = $1
		ORDER BY seq ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.PreviousOwner, 0)
	for rows.Next() {
		var p owners.PreviousOwner
		if err := rows.Scan(
			&p.ID,
			&p.AnimalID,
			&p.PreviousOwnerKnown,
			&p.Name,
			&p.ReasonForIntake,
			&p.LengthOfStayYears,
			&p.PreviousVeterinaryClinic,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type AssessmentsRepo struct {
	db *sql.DB
}

func NewAssessmentsRepo(db *sql.DB) *AssessmentsRepo {
	return &AssessmentsRepo{db: db}
}

func (r *AssessmentsRepo) Create(ctx context.Context, a assessments.Assessment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO assessments (
			id, animal_id, assessed_by, cage_id,
			recommended_next_steps, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.AnimalID,
		nullString(a.AssessedBy),
		nullString(a.CageID),
		a.RecommendedNextSteps,
		a.Notes,
		a.CreatedAt,
	)
	return mapErr(err, "assessment")
}

func (r *AssessmentsRepo) ListByAnimal(ctx context.Context, animalID string) ([]assessments.Assessment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, animal_id, assessed_by, cage_id,
			recommended_next_steps, notes, created_at
		FROM assessments
		WHERE animal_id = $1
		ORDER BY seq ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessments.Assessment, 0)
	for rows.Next() {
		var a assessments.Assessment
		var by, cage sql.NullString
		if err := rows.Scan(
			&a.ID,
			&a.AnimalID,
			&by,
			&cage,
			&a.RecommendedNextSteps,
			&a.Notes,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.AssessedBy = by.String
		a.CageID = cage.String
		out = append(out, a)
	}
	return out, rows.Err()
}

type OutcomesRepo struct {
	db *sql.DB
}

func NewOutcomesRepo(db *sql.DB) *OutcomesRepo {
	return &OutcomesRepo{db: db}
}

func (r *OutcomesRepo) Create(ctx context.Context, p outcomes.Prediction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outcome_predictions (
			id, animal_id, outcome, probability, predicted_by, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.AnimalID,
		p.Outcome,
		p.Probability,
		nullString(p.PredictedBy),
		p.CreatedAt,
	)
	return mapErr(err, "outcome prediction")
}

func (r *OutcomesRepo) ListByAnimal(ctx context.Context, animalID string) ([]outcomes.Prediction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, outcome, probability, predicted_by, created_at
		FROM outcome_predictions
		WHERE animal_id = $1
		ORDER BY seq ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]outcomes.Prediction, 0)
	for rows.Next() {
		var p outcomes.Prediction
		var by sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.AnimalID,
			&p.Outcome,
			&p.Probability,
			&by,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.PredictedBy = by.String
		out = append(out, p)
	}
	return out, rows.Err()
}
