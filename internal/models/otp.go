package models

import "time"

// OneTimeCode is a short-lived login factor delivered out-of-band. At most
// one unexpired code exists per email: issuing a new one deletes the rest.
type OneTimeCode struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Code      string    `bson:"otp" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

func (c *OneTimeCode) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
