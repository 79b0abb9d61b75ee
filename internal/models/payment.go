package models

import "time"

// Payment records one payment event as claimed by the client. The provider
// is trusted: nothing here verifies amounts or transaction hashes.
type Payment struct {
	ID                       string    `bson:"_id,omitempty" json:"id"`
	UserID                   string    `bson:"user_id" json:"user_id"`
	UserEmail                string    `bson:"user_email" json:"user_email"`
	UserName                 string    `bson:"user_name" json:"user_name"`
	PlanName                 string    `bson:"plan_name_payment" json:"plan_name_payment"`
	OriginalPrice            float64   `bson:"original_price" json:"original_price"`
	DiscountAmount           float64   `bson:"discount_amount" json:"discount_amount"`
	FinalPrice               float64   `bson:"final_price" json:"final_price"`
	CouponCode               string    `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
	CouponApplied            bool      `bson:"coupon_applied" json:"coupon_applied"`
	PaymentMethod            string    `bson:"payment_method" json:"payment_method"`
	PaymentProvider          string    `bson:"payment_provider,omitempty" json:"payment_provider,omitempty"`
	TransactionID            string    `bson:"transaction_id" json:"transaction_id"`
	PaymentStatus            string    `bson:"payment_status" json:"payment_status"`
	CryptoCurrency           string    `bson:"crypto_currency,omitempty" json:"crypto_currency,omitempty"`
	CryptoNetwork            string    `bson:"crypto_network,omitempty" json:"crypto_network,omitempty"`
	CryptoTransactionHash    string    `bson:"crypto_transaction_hash,omitempty" json:"crypto_transaction_hash,omitempty"`
	CryptoFromAddress        string    `bson:"crypto_from_address,omitempty" json:"crypto_from_address,omitempty"`
	CryptoToAddress          string    `bson:"crypto_to_address,omitempty" json:"crypto_to_address,omitempty"`
	CryptoAmount             string    `bson:"crypto_amount,omitempty" json:"crypto_amount,omitempty"`
	CryptoVerificationStatus string    `bson:"crypto_verification_status" json:"crypto_verification_status"`
	StripePaymentIntentID    string    `bson:"stripe_payment_intent_id,omitempty" json:"stripe_payment_intent_id,omitempty"`
	PayPalOrderID            string    `bson:"paypal_order_id,omitempty" json:"paypal_order_id,omitempty"`
	CryptomusOrderID         string    `bson:"cryptomus_order_id,omitempty" json:"cryptomus_order_id,omitempty"`
	PaymentCompletedAt       time.Time `bson:"payment_completed_at" json:"payment_completed_at"`
	CreatedAt                time.Time `bson:"created_at" json:"created_at"`
}
