package infrastructure

import (
	"context"
	"testing"
	"time"

	"Rateio/internal/domain/round"
	"Rateio/internal/pkg"
)

func TestRoundRepositoryUpdateClearsZeroFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDb(t, &collectionRoundDB{})
	repo := &RoundRepository{DB: db}

	entity := &round.CollectionRound{
		Id:                   pkg.GenerateULIDObject(),
		Title:                "Pintura",
		TargetAmount:         2000,
		StartDate:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ParticipatingUnitIds: []string{"E-01", "E-02"},
		Remarks:              "observação antiga",
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	if err := repo.Create(ctx, entity); err != nil {
		t.Fatalf("unexpected error creating round: %v", err)
	}

	entity.Title = "Pintura da fachada"
	entity.Remarks = ""
	entity.UpdatedAt = time.Now()
	if err := repo.Update(ctx, entity); err != nil {
		t.Fatalf("unexpected error updating round: %v", err)
	}

	stored, err := repo.GetById(ctx, entity.Id)
	if err != nil {
		t.Fatalf("unexpected error reading round: %v", err)
	}
	if stored.Title != "Pintura da fachada" {
		t.Fatalf("expected updated title, got %q", stored.Title)
	}
	if stored.Remarks != "" {
		t.Fatalf("expected remarks cleared, got %q", stored.Remarks)
	}
}
