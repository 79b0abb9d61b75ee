package repository

import (
	"context"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/store"
)

type PaymentRepo struct {
	store store.Backend
}

func NewPaymentRepo(backend store.Backend) *PaymentRepo {
	return &PaymentRepo{store: backend}
}

func (r *PaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	payment.CreatedAt = time.Now().UTC()
	doc, err := store.ToDocument(payment)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, store.Payments, doc)
	if err != nil {
		return err
	}
	payment.ID = id
	return nil
}

func (r *PaymentRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, store.Payments, nil)
}

func (r *PaymentRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.store.Count(ctx, store.Payments, store.Document{"payment_status": status})
}

// SumCompleted totals final_price across completed payments, capped at the
// admin reporting limit.
func (r *PaymentRepo) SumCompleted(ctx context.Context, limit int64) (float64, error) {
	docs, err := r.store.FindMany(ctx, store.Payments, store.Document{"payment_status": "completed"}, limit)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, doc := range docs {
		var payment models.Payment
		if err := store.DecodeDocument(doc, &payment); err != nil {
			return 0, err
		}
		total += payment.FinalPrice
	}
	return total, nil
}
