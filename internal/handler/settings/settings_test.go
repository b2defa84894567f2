package settings

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"deltadesk/internal/ledger"
	"deltadesk/internal/model"
	"deltadesk/internal/store"
	"deltadesk/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func newTestEngine(t *testing.T) (*gin.Engine, *ledger.Ledger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewFileStore(filepath.Join(t.TempDir(), "portfolio_data.json"))
	l := ledger.New(st, model.Settings{ContractsPerOption: 100, Currency: "USD", TransactionFee: 0.75})
	h := NewHandler(l)

	g := gin.New()
	g.GET("/api/v1/settings", h.SettingsGet())
	g.POST("/api/v1/settings", h.SettingsUpdate())
	return g, l
}

func TestSettingsUpdate_Partial(t *testing.T) {
	g, l := newTestEngine(t)
	_, _ = l.AddOption(map[string]interface{}{
		"position_type": "long", "delta": 0.5, "quantity": 2, "price": 1.0,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/settings",
		strings.NewReader(`{"contracts_per_option":1,"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp response.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != 0 {
		t.Fatalf("code = %d, message %q", resp.Code, resp.Message)
	}

	// 乘数100 -> 1，期权net_delta重算为原值的1/100
	if got := l.Options()[0].NetDelta; got != 1.0 {
		t.Errorf("net_delta = %v, want 1", got)
	}
	// 其他设置保持不变，未知键被忽略
	if s := l.Settings(); s.Currency != "USD" || s.TransactionFee != 0.75 {
		t.Errorf("settings = %+v", s)
	}
}

func TestSettingsUpdate_BadValue(t *testing.T) {
	g, l := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/settings",
		strings.NewReader(`{"contracts_per_option":"many"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if l.Settings().ContractsPerOption != 100 {
		t.Error("settings mutated by rejected update")
	}
}

func TestSettingsGet(t *testing.T) {
	g, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp response.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, _ := json.Marshal(resp.Data)
	var s model.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if s.ContractsPerOption != 100 || s.Currency != "USD" {
		t.Errorf("settings = %+v", s)
	}
}
