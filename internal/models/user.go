package models

import "time"

type User struct {
	ID                      string    `bson:"_id,omitempty" json:"id"`
	FirstName               string    `bson:"first_name" json:"first_name"`
	LastName                string    `bson:"last_name" json:"last_name"`
	Email                   string    `bson:"email" json:"email"`
	Phone                   string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company                 string    `bson:"company,omitempty" json:"company,omitempty"`
	Country                 string    `bson:"country" json:"country"`
	PasswordHash            string    `bson:"password_hash" json:"-"`
	SelectedPlanName        string    `bson:"selected_plan_name,omitempty" json:"selected_plan_name,omitempty"`
	SelectedPlanPrice       float64   `bson:"selected_plan_price,omitempty" json:"selected_plan_price,omitempty"`
	SelectedPlanPeriod      string    `bson:"selected_plan_period,omitempty" json:"selected_plan_period,omitempty"`
	SelectedPlanDescription string    `bson:"selected_plan_description,omitempty" json:"selected_plan_description,omitempty"`
	AgreeToTerms            bool      `bson:"agree_to_terms" json:"agree_to_terms"`
	AgreeToMarketing        bool      `bson:"agree_to_marketing" json:"agree_to_marketing"`
	UniqueID                string    `bson:"unique_id" json:"unique_id"`
	AccessToken             string    `bson:"access_token" json:"-"`
	RegistrationMethod      string    `bson:"registration_method" json:"registration_method"`
	Status                  string    `bson:"status" json:"status"`
	CreatedAt               time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt               time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName is the display form used in login/OTP responses and copied onto
// payment and questionnaire records.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
