package models

import (
	"strings"
	"time"
)

type Questionnaire struct {
	ID                   string    `bson:"_id,omitempty" json:"id"`
	UserID               string    `bson:"user_id" json:"user_id"`
	UserEmail            string    `bson:"user_email" json:"user_email"`
	UserName             string    `bson:"user_name" json:"user_name"`
	TradesPerDay         string    `bson:"trades_per_day" json:"trades_per_day"`
	TradingSession       string    `bson:"trading_session" json:"trading_session"`
	CryptoAssets         []string  `bson:"crypto_assets" json:"crypto_assets"`
	ForexAssets          []string  `bson:"forex_assets" json:"forex_assets"`
	CustomForexPairs     []string  `bson:"custom_forex_pairs" json:"custom_forex_pairs"`
	HasAccount           string    `bson:"has_account" json:"has_account"`
	AccountEquity        float64   `bson:"account_equity,omitempty" json:"account_equity,omitempty"`
	PropFirm             string    `bson:"prop_firm" json:"prop_firm"`
	AccountType          string    `bson:"account_type" json:"account_type"`
	AccountSize          float64   `bson:"account_size" json:"account_size"`
	AccountNumber        string    `bson:"account_number" json:"account_number"`
	RiskPercentage       float64   `bson:"risk_percentage" json:"risk_percentage"`
	RiskRewardRatio      string    `bson:"risk_reward_ratio" json:"risk_reward_ratio"`
	ChallengeStep        string    `bson:"challenge_step,omitempty" json:"challenge_step,omitempty"`
	TradingExperience    string    `bson:"trading_experience" json:"trading_experience"`
	MilestoneAccessLevel int       `bson:"milestone_access_level" json:"milestone_access_level"`
	CreatedAt            time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}

// milestoneRules maps account-type substrings to access levels. Order
// matters: the first matching rule wins.
var milestoneRules = []struct {
	substrings []string
	level      int
}{
	{[]string{"demo", "beginner"}, 1},
	{[]string{"standard"}, 2},
	{[]string{"pro", "experienced"}, 3},
	{[]string{"funded", "evaluation"}, 4},
}

// MilestoneAccessLevel derives the dashboard access level (1-4) from the
// submitted account-type string. Unknown types default to level 1.
func MilestoneAccessLevel(accountType string) int {
	lowered := strings.ToLower(accountType)
	for _, rule := range milestoneRules {
		for _, substring := range rule.substrings {
			if strings.Contains(lowered, substring) {
				return rule.level
			}
		}
	}
	return 1
}
