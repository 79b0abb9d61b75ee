package repository

import (
	"context"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/store"

	"github.com/google/uuid"
)

// CodeTTL is how long an issued one-time code stays valid.
const CodeTTL = 10 * time.Minute

type OTPRepo struct {
	store store.Backend
}

func NewOTPRepo(backend store.Backend) *OTPRepo {
	return &OTPRepo{store: backend}
}

// Replace deletes every prior code for the email and inserts a fresh one,
// keeping the at-most-one-active-code invariant.
func (r *OTPRepo) Replace(ctx context.Context, email, code string) (*models.OneTimeCode, error) {
	if _, err := r.store.DeleteMany(ctx, store.OTPs, store.Document{"email": email}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	otp := &models.OneTimeCode{
		ID:        uuid.NewString(),
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(CodeTTL),
	}
	doc, err := store.ToDocument(otp)
	if err != nil {
		return nil, err
	}
	if _, err := r.store.Insert(ctx, store.OTPs, doc); err != nil {
		return nil, err
	}
	return otp, nil
}

// FindValid looks up an unexpired code for the email. Returns nil when
// absent, mismatched, or expired.
func (r *OTPRepo) FindValid(ctx context.Context, email, code string) (*models.OneTimeCode, error) {
	doc, err := r.store.FindOne(ctx, store.OTPs, store.Document{
		"email":      email,
		"otp":        code,
		"expires_at": store.Document{"$gt": time.Now().UTC()},
	})
	if err != nil || doc == nil {
		return nil, err
	}
	var otp models.OneTimeCode
	if err := store.DecodeDocument(doc, &otp); err != nil {
		return nil, err
	}
	return &otp, nil
}

// Consume deletes a verified code so it can never be used twice.
func (r *OTPRepo) Consume(ctx context.Context, id string) error {
	_, err := r.store.DeleteMany(ctx, store.OTPs, store.Document{"_id": id})
	return err
}

// CountActive reports how many unexpired codes exist for an email.
func (r *OTPRepo) CountActive(ctx context.Context, email string) (int64, error) {
	return r.store.Count(ctx, store.OTPs, store.Document{
		"email":      email,
		"expires_at": store.Document{"$gt": time.Now().UTC()},
	})
}
