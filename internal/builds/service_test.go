package builds

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"bobber/internal/catalog"
	"bobber/internal/pricing"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	builds  []*BuildRecord
	saveErr error
	listErr error
	nextID  int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) Save(ctx context.Context, build *BuildRecord) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}

	build.ID = strconv.Itoa(m.nextID)
	m.nextID++

	m.builds = append(m.builds, build)
	return build.ID, nil
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]*BuildRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	if limit > len(m.builds) {
		limit = len(m.builds)
	}

	var recent []*BuildRecord
	for i := len(m.builds) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, m.builds[i])
	}
	return recent, nil
}

func newTestService(repo Repository) *Service {
	return NewService(pricing.NewEngine(catalog.NewStore()), repo)
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestFinalizeBuild_Success(t *testing.T) {
	mockRepo := NewMockRepository()
	service := newTestService(mockRepo)

	build, err := service.Finalize(
		context.Background(),
		pricing.Selection{
			Color:   "Pearl White",
			Seat:    "Diamond Stitch",
			Bars:    "Clip-ons",
			Exhaust: "Slash-Cut",
			Tires:   "Whitewall",
		},
		"kunal",
		"first build",
	)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if build.ID == "" {
		t.Errorf("expected ID to be set")
	}
	if build.Total != 11380 {
		t.Errorf("expected total 11380, got %v", build.Total)
	}
	if build.Currency != "USD" {
		t.Errorf("expected currency USD, got %s", build.Currency)
	}
	if build.Author != "kunal" {
		t.Errorf("expected author to be carried over, got %q", build.Author)
	}
	if build.Note != "first build" {
		t.Errorf("expected note to be carried over, got %q", build.Note)
	}
	if build.CreatedAt.IsZero() {
		t.Errorf("expected CreatedAt to be set")
	}

	if len(mockRepo.builds) != 1 {
		t.Fatalf("expected 1 persisted build, got %d", len(mockRepo.builds))
	}
}

func TestFinalizeBuild_InvalidSelection(t *testing.T) {
	mockRepo := NewMockRepository()
	service := newTestService(mockRepo)

	_, err := service.Finalize(
		context.Background(),
		pricing.Selection{
			Color:   "Neon Pink",
			Seat:    "Solo Minimal",
			Bars:    "Low Drag",
			Exhaust: "Stock",
			Tires:   "Street",
		},
		"",
		"",
	)

	var vErr *pricing.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}

	if len(mockRepo.builds) != 0 {
		t.Errorf("expected nothing persisted for an invalid selection, got %d", len(mockRepo.builds))
	}
}

func TestFinalizeBuild_RepositoryError(t *testing.T) {
	mockRepo := NewMockRepository()
	mockRepo.saveErr = errors.New("connection refused")
	service := newTestService(mockRepo)

	_, err := service.Finalize(
		context.Background(),
		pricing.Selection{
			Color:   "Matte Black",
			Seat:    "Solo Minimal",
			Bars:    "Low Drag",
			Exhaust: "Stock",
			Tires:   "Street",
		},
		"",
		"",
	)

	if err == nil {
		t.Fatal("expected error when repository fails")
	}

	var vErr *pricing.ValidationError
	if errors.As(err, &vErr) {
		t.Errorf("repository failure must not look like a validation error")
	}
}

func TestListRecentBuilds_EmptyIsNotNil(t *testing.T) {
	mockRepo := NewMockRepository()
	service := newTestService(mockRepo)

	records, err := service.ListRecent(context.Background(), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if records == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(records) != 0 {
		t.Errorf("expected empty list, got %d", len(records))
	}
}

func TestListRecentBuilds_Error(t *testing.T) {
	mockRepo := NewMockRepository()
	mockRepo.listErr = errors.New("connection refused")
	service := newTestService(mockRepo)

	if _, err := service.ListRecent(context.Background(), 20); err == nil {
		t.Fatal("expected error when repository fails")
	}
}
