package portfolio

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
	l := ledger.New(st, model.Settings{ContractsPerOption: 100, Currency: "USD"})
	h := NewHandler(l)

	g := gin.New()
	g.GET("/api/v1/options", h.OptionsGetList())
	g.POST("/api/v1/options", h.OptionCreate())
	g.DELETE("/api/v1/options/:id", h.OptionRemove())
	g.GET("/api/v1/portfolio/summary", h.SummaryGet())
	g.GET("/api/v1/portfolio/hedge", h.HedgeGet())
	return g, l
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.ApiResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	var resp response.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestOptionCreate_Success(t *testing.T) {
	g, l := newTestEngine(t)

	w, resp := doJSON(t, g, http.MethodPost, "/api/v1/options",
		`{"position_type":"short","delta":0.5,"quantity":2,"price":3.2,"symbol":"AAPL"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp.Code != 0 {
		t.Fatalf("code = %d, message %q", resp.Code, resp.Message)
	}
	if len(l.Options()) != 1 {
		t.Fatalf("options = %d, want 1", len(l.Options()))
	}
	if got := l.Options()[0].NetDelta; got != -100.0 {
		t.Errorf("net_delta = %v, want -100", got)
	}
}

func TestOptionCreate_ValidationError(t *testing.T) {
	g, l := newTestEngine(t)

	w, resp := doJSON(t, g, http.MethodPost, "/api/v1/options",
		`{"position_type":"long","delta":"abc","quantity":1,"price":1.0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp.Code == 0 {
		t.Fatal("expected non-zero error code")
	}
	if len(l.Options()) != 0 {
		t.Error("failed create mutated state")
	}
}

func TestOptionRemove_MissingIDSucceeds(t *testing.T) {
	g, _ := newTestEngine(t)

	w, resp := doJSON(t, g, http.MethodDelete, "/api/v1/options/no-such-id", "")
	if w.Code != http.StatusOK || resp.Code != 0 {
		t.Fatalf("status = %d code = %d, want success", w.Code, resp.Code)
	}
}

func TestOptionsGetList_Filter(t *testing.T) {
	g, l := newTestEngine(t)
	_, _ = l.AddOption(map[string]interface{}{
		"position_type": "long", "delta": 0.4, "quantity": 1, "price": 1.0,
	})
	_, _ = l.AddOption(map[string]interface{}{
		"position_type": "short", "delta": 0.4, "quantity": 1, "price": 1.0,
	})

	w, resp := doJSON(t, g, http.MethodGet, "/api/v1/options?position_type=short", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data, _ := json.Marshal(resp.Data)
	var list []model.OptionPosition
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].PositionType != "short" {
		t.Errorf("filtered list = %+v", list)
	}

	// 非法过滤值被validator拦下
	w, _ = doJSON(t, g, http.MethodGet, "/api/v1/options?position_type=flat", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid filter status = %d, want 400", w.Code)
	}
}

func TestHedgeGet(t *testing.T) {
	g, l := newTestEngine(t)
	_, _ = l.AddUnderlying(map[string]interface{}{
		"position_type": "long", "quantity": 5, "price": 10.0,
	})

	w, resp := doJSON(t, g, http.MethodGet, "/api/v1/portfolio/hedge", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data, _ := json.Marshal(resp.Data)
	var rec model.HedgeRecommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("decode hedge: %v", err)
	}
	if rec.Action != "sell" || rec.Quantity != 5 {
		t.Errorf("hedge = %+v, want sell 5", rec)
	}
}
