package builds

import "context"

type Repository interface {
	Save(ctx context.Context, build *BuildRecord) (string, error)
	ListRecent(ctx context.Context, limit int) ([]*BuildRecord, error)
}
