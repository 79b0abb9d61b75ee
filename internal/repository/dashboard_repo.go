package repository

import (
	"context"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/store"
)

type DashboardRepo struct {
	store store.Backend
}

func NewDashboardRepo(backend store.Backend) *DashboardRepo {
	return &DashboardRepo{store: backend}
}

func (r *DashboardRepo) Create(ctx context.Context, dashboard *models.DashboardData) error {
	dashboard.CreatedAt = time.Now().UTC()
	dashboard.UpdatedAt = time.Now().UTC()
	doc, err := store.ToDocument(dashboard)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, store.DashboardData, doc)
	if err != nil {
		return err
	}
	dashboard.ID = id
	return nil
}

func (r *DashboardRepo) FindByUserID(ctx context.Context, userID string) (store.Document, error) {
	return r.store.FindOne(ctx, store.DashboardData, store.Document{"user_id": userID})
}

// Merge applies a partial patch to the user's dashboard record: only the
// fields present in set are written, and last_active is always stamped.
// Returns the number of modified documents.
func (r *DashboardRepo) Merge(ctx context.Context, userID string, set store.Document) (int64, error) {
	set["last_active"] = time.Now().UTC()
	return r.store.UpdateOne(ctx, store.DashboardData, store.Document{"user_id": userID}, set)
}
