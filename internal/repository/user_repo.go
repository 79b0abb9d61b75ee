package repository

import (
	"context"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/store"
)

type UserRepo struct {
	store store.Backend
}

func NewUserRepo(backend store.Backend) *UserRepo {
	return &UserRepo{store: backend}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = time.Now().UTC()
	doc, err := store.ToDocument(user)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, store.Users, doc)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, store.Document{"email": email})
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, store.Document{"_id": id})
}

func (r *UserRepo) findOne(ctx context.Context, filter store.Document) (*models.User, error) {
	doc, err := r.store.FindOne(ctx, store.Users, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	var user models.User
	if err := store.DecodeDocument(doc, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, store.Users, nil)
}

func (r *UserRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.store.Count(ctx, store.Users, store.Document{"status": status})
}
