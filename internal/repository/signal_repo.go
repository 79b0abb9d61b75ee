package repository

import (
	"context"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/store"
)

type SignalRepo struct {
	store store.Backend
}

func NewSignalRepo(backend store.Backend) *SignalRepo {
	return &SignalRepo{store: backend}
}

func (r *SignalRepo) Create(ctx context.Context, signal *models.SignalTrack) error {
	signal.CreatedAt = time.Now().UTC()
	doc, err := store.ToDocument(signal)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, store.Signals, doc)
	if err != nil {
		return err
	}
	signal.ID = id
	return nil
}

func (r *SignalRepo) FindByUserID(ctx context.Context, userID string) ([]store.Document, error) {
	return r.store.FindMany(ctx, store.Signals, store.Document{"user_id": userID}, 0)
}

func (r *SignalRepo) FindAll(ctx context.Context, limit int64) ([]store.Document, error) {
	return r.store.FindMany(ctx, store.Signals, nil, limit)
}
