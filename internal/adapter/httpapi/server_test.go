package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmcoelho/bancaflow-backend/internal/adapter/repository/jsonstore"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/auth"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/ledger"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/objective"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/reporting"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/riskprofile"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := jsonstore.Open("")
	require.NoError(t, err)

	txRepo := jsonstore.NewTransactionRepository(store)
	objRepo := jsonstore.NewObjectiveRepository(store)
	profileRepo := jsonstore.NewRiskProfileRepository(store)
	userRepo := jsonstore.NewUserRepository(store)

	api := NewServer(
		auth.NewAuthService(userRepo),
		ledger.NewLedgerService(txRepo),
		objective.NewObjectiveService(objRepo),
		riskprofile.NewRiskProfileService(profileRepo),
		reporting.NewReportingService(txRepo, profileRepo),
	)

	ts := httptest.NewServer(api.Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func doJSONList(t *testing.T, ts *httptest.Server, path, token string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func registerUser(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()

	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	t.Run("register then login", func(t *testing.T) {
		token := registerUser(t, ts, "ana@example.com")
		assert.NotEmpty(t, token)

		resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "ana@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("login with wrong password", func(t *testing.T) {
		registerUser(t, ts, "bia@example.com")

		resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "bia@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("protected route without token", func(t *testing.T) {
		resp, _ := doJSON(t, ts, http.MethodGet, "/api/v1/transactions", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		token := registerUser(t, ts, "caio@example.com")

		resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/transactions", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestTransactionEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "ledger@example.com")

	t.Run("record deposit", func(t *testing.T) {
		resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
			"kind":            "DEPOSIT",
			"amount":          "1000",
			"is_initial_bank": true,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "1000", body["amount"])
		assert.Equal(t, "Other", body["category"])
		assert.Equal(t, true, body["is_initial_bank"])
	})

	t.Run("record rejects non-positive amount", func(t *testing.T) {
		resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
			"kind":   "DEPOSIT",
			"amount": "0",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("record rejects malformed amount", func(t *testing.T) {
		resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
			"kind":   "DEPOSIT",
			"amount": "not-a-number",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("edit changes only the given fields", func(t *testing.T) {
		_, created := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
			"kind":     "WITHDRAWAL",
			"amount":   "200",
			"category": "Bet Loss",
		})
		id := created["id"].(string)

		resp, body := doJSON(t, ts, http.MethodPut, "/api/v1/transactions/"+id, token, map[string]interface{}{
			"amount": "300",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "300", body["amount"])
		assert.Equal(t, "WITHDRAWAL", body["kind"])
		assert.Equal(t, "Bet Loss", body["category"])
	})

	t.Run("delete then delete again", func(t *testing.T) {
		_, created := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
			"kind":   "DEPOSIT",
			"amount": "50",
		})
		id := created["id"].(string)

		resp, _ := doJSON(t, ts, http.MethodDelete, "/api/v1/transactions/"+id, token, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = doJSON(t, ts, http.MethodDelete, "/api/v1/transactions/"+id, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("balance summary reflects the ledger", func(t *testing.T) {
		ts := newTestServer(t)
		token := registerUser(t, ts, "summary@example.com")

		for _, tx := range []map[string]interface{}{
			{"kind": "DEPOSIT", "amount": "1000", "is_initial_bank": true},
			{"kind": "DEPOSIT", "amount": "500"},
			{"kind": "WITHDRAWAL", "amount": "300"},
		} {
			resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", token, tx)
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}

		resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/transactions/summary", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "1200", body["balance"])
		assert.Equal(t, "1500", body["total_deposits"])
		assert.Equal(t, "300", body["total_withdrawals"])
		assert.Equal(t, "1000", body["initial_bankroll"])
	})
}

func TestObjectiveEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "goals@example.com")

	t.Run("create and list", func(t *testing.T) {
		resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/objectives", token, map[string]interface{}{
			"title":          "Car",
			"target_amount":  "20000",
			"current_amount": "5000",
			"deadline":       "2099-12-31T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "25", body["progress"])
		assert.Equal(t, "warn", body["color"])

		listResp, items := doJSONList(t, ts, "/api/v1/objectives", token)
		assert.Equal(t, http.StatusOK, listResp.StatusCode)
		require.Len(t, items, 1)
		assert.Equal(t, "Car", items[0]["title"])
	})

	t.Run("create rejects past deadline", func(t *testing.T) {
		resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/objectives", token, map[string]interface{}{
			"title":         "Too late",
			"target_amount": "100",
			"deadline":      "2001-01-01T00:00:00Z",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update missing objective", func(t *testing.T) {
		resp, _ := doJSON(t, ts, http.MethodPut, "/api/v1/objectives/1b4e28ba-2fa1-11d2-883f-0016d3cca427", token, map[string]interface{}{
			"current_amount": "10",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRiskProfileEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "risk@example.com")

	t.Run("uninitialized defaults", func(t *testing.T) {
		resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/risk-profile", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["is_initialized"])
		assert.Equal(t, float64(5), body["risk_level"])
		assert.Equal(t, "BALANCED", body["profile_type"])
	})

	t.Run("initialize derives limits from the balance", func(t *testing.T) {
		resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/risk-profile/initialize", token, map[string]interface{}{
			"initial_balance": "1000",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["is_initialized"])
		assert.Equal(t, "200", body["stop_loss"])
		assert.Equal(t, "500", body["profit_target"])
	})

	t.Run("update reclassifies the profile type", func(t *testing.T) {
		resp, body := doJSON(t, ts, http.MethodPut, "/api/v1/risk-profile", token, map[string]interface{}{
			"risk_level": 8,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "HIGH_RISK", body["profile_type"])
	})

	t.Run("reset clears everything", func(t *testing.T) {
		resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/risk-profile/reset", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["is_initialized"])
		assert.Equal(t, "0", body["initial_balance"])
	})
}

func TestDashboardEndpoint(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "dash@example.com")

	for _, tx := range []map[string]interface{}{
		{"kind": "DEPOSIT", "amount": "1000", "is_initial_bank": true},
		{"kind": "DEPOSIT", "amount": "500"},
		{"kind": "WITHDRAWAL", "amount": "300", "category": "Profit Withdrawal"},
	} {
		resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", token, tx)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "1200", body["balance"])
	assert.Equal(t, "1500", body["total_deposits"])
	assert.Equal(t, "300", body["total_withdrawals"])
	assert.Equal(t, "1000", body["cumulative_initial_balance"])
	// operation result = balance - baseline, real profit floors nothing here
	assert.Equal(t, "200", body["operation_result"])
	assert.Equal(t, "500", body["real_profit"])
	assert.Equal(t, true, body["roi_defined"])
	assert.Equal(t, "50", body["roi"])
	assert.Equal(t, false, body["has_initialization_issue"])
	assert.Equal(t, "BALANCED", body["profile_type"])
}

func TestUserIsolation(t *testing.T) {
	ts := newTestServer(t)
	tokenA := registerUser(t, ts, "a@example.com")
	tokenB := registerUser(t, ts, "b@example.com")

	_, created := doJSON(t, ts, http.MethodPost, "/api/v1/transactions", tokenA, map[string]interface{}{
		"kind":   "DEPOSIT",
		"amount": "100",
	})
	id := created["id"].(string)

	// B cannot see or touch A's transaction
	resp, items := doJSONList(t, ts, "/api/v1/transactions", tokenB)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, items)

	resp, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/api/v1/transactions/%s", id), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
