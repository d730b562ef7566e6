package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-shelter-api/internal/domain/adopters"
	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/domain/auth"
	"animal-shelter-api/internal/domain/health"
	"animal-shelter-api/internal/domain/inspections"
	"animal-shelter-api/internal/domain/outcomes"
	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/platform/apperr"
)

func seedAnimal(t *testing.T, st *Store, id, code string) {
	t.Helper()
	if err := st.Animals().Create(context.Background(), animals.Animal{ID: id, AnimalID: code, Species: animals.SpeciesDog}); err != nil {
		t.Fatalf("create animal %s: %v", id, err)
	}
}

func TestUsersAndTokens_Uniqueness(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	u := users.User{ID: "u1", Email: "ana@shelter.org"}
	if err := st.Users().Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := st.Users().Create(ctx, users.User{ID: "u2", Email: "ana@shelter.org"}); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected email conflict, got %v", err)
	}

	tok := auth.Token{Key: "k1", UserID: "u1", CreatedAt: time.Now()}
	if err := st.Tokens().Create(ctx, tok); err != nil {
		t.Fatalf("create token: %v", err)
	}
	if err := st.Tokens().Create(ctx, auth.Token{Key: "k2", UserID: "u1"}); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected one token per user, got %v", err)
	}
	if err := st.Tokens().DeleteByKey(ctx, "k1"); err != nil {
		t.Fatalf("delete token: %v", err)
	}
	if _, err := st.Tokens().GetByUser(ctx, "u1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected token gone, got %v", err)
	}
}

func TestAnimals_OrderAndUniqueCode(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	seedAnimal(t, st, "a1", "dog_11111111")
	seedAnimal(t, st, "a2", "dog_22222222")
	seedAnimal(t, st, "a3", "dog_33333333")

	err := st.Animals().Create(ctx, animals.Animal{ID: "a4", AnimalID: "dog_11111111"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on duplicate animal_id, got %v", err)
	}

	items, total, err := st.Animals().List(ctx, 1, 5)
	if err != nil || total != 3 || len(items) != 2 || items[0].ID != "a2" || items[1].ID != "a3" {
		t.Fatalf("unexpected list total=%d items=%+v err=%v", total, items, err)
	}
	items, _, _ = st.Animals().List(ctx, 10, 5)
	if len(items) != 0 {
		t.Fatalf("expected empty slice past the end")
	}
}

func TestAnimalDelete_Cascades(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	if err := st.Users().Create(ctx, users.User{ID: "u1", Email: "a@b.org"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	seedAnimal(t, st, "a1", "dog_11111111")
	seedAnimal(t, st, "a2", "cat_22222222")

	_ = st.Health().Create(ctx, health.Record{ID: "h1", AnimalID: "a1"})
	_ = st.Health().Create(ctx, health.Record{ID: "h2", AnimalID: "a2"})
	_ = st.Outcomes().Create(ctx, outcomes.Prediction{ID: "o1", AnimalID: "a1"})
	if err := st.Adopters().Create(ctx, adopters.Adopter{ID: "ad1", UserID: "u1", AnimalID: "a1"}); err != nil {
		t.Fatalf("create adopter: %v", err)
	}

	if err := st.Health().Create(ctx, health.Record{ID: "hx", AnimalID: "missing"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for orphan record, got %v", err)
	}

	if err := st.Animals().Delete(ctx, "a1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if recs, _ := st.Health().ListByAnimal(ctx, "a1"); len(recs) != 0 {
		t.Fatalf("expected health records removed")
	}
	if recs, _ := st.Health().ListByAnimal(ctx, "a2"); len(recs) != 1 {
		t.Fatalf("other animal's records must survive")
	}
	if preds, _ := st.Outcomes().ListByAnimal(ctx, "a1"); len(preds) != 0 {
		t.Fatalf("expected predictions removed")
	}
	ad, err := st.Adopters().GetByID(ctx, "ad1")
	if err != nil || ad.AnimalID != "" {
		t.Fatalf("expected adopter kept with animal cleared, got %+v err=%v", ad, err)
	}
	if _, err := st.Animals().GetByAnimalID(ctx, "dog_11111111"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected code index cleared")
	}
	if _, total, _ := st.Animals().List(ctx, 0, 10); total != 1 {
		t.Fatalf("expected 1 animal left, got %d", total)
	}
}

func TestAdopterDelete_CascadesInspections(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	_ = st.Users().Create(ctx, users.User{ID: "u1", Email: "a@b.org"})
	_ = st.Adopters().Create(ctx, adopters.Adopter{ID: "ad1", UserID: "u1"})
	if err := st.Inspections().Create(ctx, inspections.Inspection{ID: "i1", AdopterID: "ad1"}); err != nil {
		t.Fatalf("create inspection: %v", err)
	}

	if err := st.Adopters().Delete(ctx, "ad1"); err != nil {
		t.Fatalf("delete adopter: %v", err)
	}
	if list, _ := st.Inspections().ListByAdopter(ctx, "ad1"); len(list) != 0 {
		t.Fatalf("expected inspections removed")
	}
	if err := st.Inspections().Create(ctx, inspections.Inspection{ID: "i2", AdopterID: "ad1"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for deleted adopter, got %v", err)
	}
}
