package handlers

import (
	"net/http"
	"testing"
)

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)

	tokenA := onboard(t, env, "a@b.com", "Funded")
	env.signup(t, "c@d.com")

	status, _ := env.request(t, http.MethodPost, "/api/enhanced/payment", tokenA, map[string]any{
		"user_email":        "a@b.com",
		"plan_name_payment": "Pro",
		"final_price":       150.0,
		"payment_method":    "card",
		"transaction_id":    "tx-1",
	})
	if status != http.StatusCreated {
		t.Fatalf("payment returned %d", status)
	}

	status, body := env.request(t, http.MethodGet, "/api/enhanced/admin/stats", tokenA, nil)
	if status != http.StatusOK {
		t.Fatalf("stats returned %d: %v", status, body)
	}

	userStats, _ := body["user_stats"].(map[string]any)
	if userStats["total_users"] != float64(2) {
		t.Errorf("total_users = %v, want 2", userStats["total_users"])
	}
	if userStats["active_users"] != float64(2) {
		t.Errorf("active_users = %v, want 2", userStats["active_users"])
	}

	paymentStats, _ := body["payment_stats"].(map[string]any)
	if paymentStats["completed_payments"] != float64(1) {
		t.Errorf("completed_payments = %v, want 1", paymentStats["completed_payments"])
	}
	if paymentStats["total_revenue"] != float64(150) {
		t.Errorf("total_revenue = %v, want 150", paymentStats["total_revenue"])
	}
	if paymentStats["avg_payment"] != float64(150) {
		t.Errorf("avg_payment = %v, want 150", paymentStats["avg_payment"])
	}

	questionnaireStats, _ := body["questionnaire_stats"].(map[string]any)
	if questionnaireStats["total_questionnaires"] != float64(1) {
		t.Errorf("total_questionnaires = %v, want 1", questionnaireStats["total_questionnaires"])
	}
	if questionnaireStats["premium_users"] != float64(1) {
		t.Errorf("premium_users = %v, want 1 (Funded is level 4)", questionnaireStats["premium_users"])
	}
	if questionnaireStats["unique_prop_firms"] != float64(1) {
		t.Errorf("unique_prop_firms = %v, want 1", questionnaireStats["unique_prop_firms"])
	}
}

func TestAdminStatsGuardsDivideByZero(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "a@b.com")

	status, body := env.request(t, http.MethodGet, "/api/enhanced/admin/stats", token, nil)
	if status != http.StatusOK {
		t.Fatalf("stats returned %d", status)
	}
	paymentStats, _ := body["payment_stats"].(map[string]any)
	if paymentStats["avg_payment"] != float64(0) {
		t.Errorf("avg_payment = %v with no payments, want 0", paymentStats["avg_payment"])
	}
}

func TestAdminUsersEnriched(t *testing.T) {
	env := newTestEnv(t)
	token := onboard(t, env, "a@b.com", "Standard")

	status, body := env.request(t, http.MethodGet, "/api/enhanced/admin/users", token, nil)
	if status != http.StatusOK {
		t.Fatalf("admin users returned %d: %v", status, body)
	}
	if body["total_count"] != float64(1) {
		t.Errorf("total_count = %v, want 1", body["total_count"])
	}

	users, _ := body["users"].([]any)
	if len(users) != 1 {
		t.Fatalf("users length = %d, want 1", len(users))
	}
	row, _ := users[0].(map[string]any)
	if row["email"] != "a@b.com" {
		t.Errorf("email = %v", row["email"])
	}
	if row["prop_firm"] != "FTMO" {
		t.Errorf("prop_firm = %v, want questionnaire joined in", row["prop_firm"])
	}
	if row["dashboard_data"] == nil {
		t.Error("dashboard_data missing from enriched row")
	}
	if _, leaked := row["password_hash"]; leaked {
		t.Error("admin listing exposes password_hash")
	}
}

func TestTradesAndSignalsListing(t *testing.T) {
	env := newTestEnv(t)
	token := onboard(t, env, "a@b.com", "Standard")

	status, _ := env.request(t, http.MethodPost, "/api/enhanced/signals/track", token, map[string]any{
		"user_email":       "a@b.com",
		"signal_id":        "sig-1",
		"signal_symbol":    "EURUSD",
		"signal_milestone": "M1",
	})
	if status != http.StatusCreated {
		t.Fatalf("signal track returned %d", status)
	}

	status, body := env.request(t, http.MethodGet, "/api/trades?userEmail=a@b.com", "", nil)
	if status != http.StatusOK {
		t.Fatalf("trades returned %d: %v", status, body)
	}
	trades, _ := body["trades"].([]any)
	if len(trades) != 1 {
		t.Errorf("trades length = %d, want 1", len(trades))
	}

	if status, _ := env.request(t, http.MethodGet, "/api/trades", "", nil); status != http.StatusBadRequest {
		t.Errorf("trades without userEmail returned %d, want 400", status)
	}

	status, body = env.request(t, http.MethodGet, "/api/signals?with_meta=true", "", nil)
	if status != http.StatusOK {
		t.Fatalf("signals returned %d", status)
	}
	meta, _ := body["meta"].(map[string]any)
	if meta["total"] != float64(1) {
		t.Errorf("meta.total = %v, want 1", meta["total"])
	}
}
