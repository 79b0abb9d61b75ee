package models

import "time"

// DashboardData is created alongside a questionnaire and mutated in place
// afterwards: performance counters arrive later via merge-patch updates, so
// they are not part of the initial document.
type DashboardData struct {
	ID                   string    `bson:"_id,omitempty" json:"id"`
	UserID               string    `bson:"user_id" json:"user_id"`
	QuestionnaireID      string    `bson:"questionnaire_id" json:"questionnaire_id"`
	PropFirm             string    `bson:"prop_firm" json:"prop_firm"`
	AccountType          string    `bson:"account_type" json:"account_type"`
	AccountSize          float64   `bson:"account_size" json:"account_size"`
	CurrentEquity        float64   `bson:"current_equity" json:"current_equity"`
	InitialBalance       float64   `bson:"initial_balance" json:"initial_balance"`
	MilestoneAccessLevel int       `bson:"milestone_access_level" json:"milestone_access_level"`
	CreatedAt            time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}
