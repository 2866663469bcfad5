package builds

import (
	"context"
	"testing"

	"bobber/internal/pricing"
)

func sampleBuild(note string) *BuildRecord {
	return &BuildRecord{
		Selection: pricing.Selection{
			Color:   "Matte Black",
			Seat:    "Solo Minimal",
			Bars:    "Low Drag",
			Exhaust: "Stock",
			Tires:   "Street",
		},
		Total:    9800,
		Currency: "USD",
		Note:     note,
	}
}

func TestInMemorySaveAssignsID(t *testing.T) {
	repo := NewInMemoryRepository()

	id, err := repo.Save(context.Background(), sampleBuild(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Error("expected a generated ID")
	}
}

func TestInMemoryListRecentNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	repo.Save(ctx, sampleBuild("first"))
	repo.Save(ctx, sampleBuild("second"))
	repo.Save(ctx, sampleBuild("third"))

	records, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 builds, got %d", len(records))
	}
	if records[0].Note != "third" || records[1].Note != "second" {
		t.Errorf("expected newest first, got %q then %q", records[0].Note, records[1].Note)
	}
}

func TestInMemoryListRecentLimitBeyondCount(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	repo.Save(ctx, sampleBuild("only"))

	records, err := repo.ListRecent(ctx, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 build, got %d", len(records))
	}
}

func TestInMemoryListRecentReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	repo.Save(ctx, sampleBuild("original"))

	records, _ := repo.ListRecent(ctx, 1)
	records[0].Note = "mutated"

	again, _ := repo.ListRecent(ctx, 1)
	if again[0].Note != "original" {
		t.Errorf("expected stored build to be untouched, got %q", again[0].Note)
	}
}
