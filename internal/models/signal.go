package models

import "time"

// SignalTrack records one signal interaction by a user. Outcome stays
// "pending" in all current flows; outcome settlement is out of scope.
type SignalTrack struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	DashboardDataID *string   `bson:"dashboard_data_id" json:"dashboard_data_id"`
	SignalID        string    `bson:"signal_id" json:"signal_id"`
	SignalSymbol    string    `bson:"signal_symbol" json:"signal_symbol"`
	SignalType      string    `bson:"signal_type,omitempty" json:"signal_type,omitempty"`
	SignalPrice     float64   `bson:"signal_price,omitempty" json:"signal_price,omitempty"`
	SignalMilestone string    `bson:"signal_milestone" json:"signal_milestone"`
	ConfidenceScore float64   `bson:"confidence_score,omitempty" json:"confidence_score,omitempty"`
	TakenByUser     bool      `bson:"taken_by_user" json:"taken_by_user"`
	TakenAt         time.Time `bson:"taken_at" json:"taken_at"`
	Outcome         string    `bson:"outcome" json:"outcome"`
	PnL             float64   `bson:"pnl" json:"pnl"`
	RiskAmount      float64   `bson:"risk_amount,omitempty" json:"risk_amount,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
