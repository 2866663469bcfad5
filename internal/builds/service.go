package builds

import (
	"context"
	"time"

	"bobber/internal/pricing"
)

type Service struct {
	engine *pricing.Engine
	repo   Repository
}

func NewService(engine *pricing.Engine, repo Repository) *Service {
	return &Service{
		engine: engine,
		repo:   repo,
	}
}

// --------------------------------------------------
// Finalize build
// --------------------------------------------------
// The total is always recomputed here. Whatever price the
// client sends along is ignored so a tampered payload can
// never persist a wrong amount.
func (s *Service) Finalize(
	ctx context.Context,
	selection pricing.Selection,
	author string,
	note string,
) (*BuildRecord, error) {

	quote, err := s.engine.Price(selection)
	if err != nil {
		return nil, err
	}

	build := &BuildRecord{
		Selection: selection,
		Total:     quote.Total.InexactFloat64(),
		Currency:  pricing.DefaultCurrency,
		Author:    author,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.repo.Save(ctx, build); err != nil {
		return nil, err
	}

	return build, nil
}

// --------------------------------------------------
// List recent builds
// --------------------------------------------------
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*BuildRecord, error) {
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []*BuildRecord{}
	}
	return records, nil
}
