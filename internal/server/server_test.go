package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Aurelian-Chen/NovasX/internal/config"
	"go.uber.org/zap"
)

func newTestServer() http.Handler {
	conf := &config.Configuration{
		Output: config.OutputConfig{Format: "pretty"},
		Server: config.ServerConfig{Address: ":8080"},
	}
	return NewHandler(zap.NewNop(), conf, "v1.2.3")
}

func get(t *testing.T, handler http.Handler, path string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(target); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestHandlePrice(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/price", map[string]string{
		"platform":  "抖音",
		"category":  "三农",
		"followers": "60000",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp priceResponse
	decode(t, rec, &resp)
	if resp.Price != 6800 {
		t.Errorf("price = %v, expected 6800", resp.Price)
	}
	if resp.Followers != 60000 {
		t.Errorf("followers echoed as %v, expected 60000", resp.Followers)
	}
}

func TestHandlePriceCelebrity(t *testing.T) {
	handler := newTestServer()
	base := get(t, handler, "/api/price", map[string]string{
		"platform":  "抖音",
		"category":  "影视综艺",
		"followers": "300000",
	})
	boosted := get(t, handler, "/api/price", map[string]string{
		"platform":  "抖音",
		"category":  "影视综艺",
		"followers": "300000",
		"celebrity": "true",
	})
	var baseResp, boostedResp priceResponse
	decode(t, base, &baseResp)
	decode(t, boosted, &boostedResp)
	if math.Abs(boostedResp.Price-2*baseResp.Price) > 1e-9 {
		t.Errorf("celebrity price %v is not double the base %v", boostedResp.Price, baseResp.Price)
	}
}

func TestHandlePriceErrors(t *testing.T) {
	handler := newTestServer()

	rec := get(t, handler, "/api/price", map[string]string{
		"platform":  "抖音",
		"category":  "电竞",
		"followers": "60000",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown category: status %d, expected 404", rec.Code)
	}

	rec = get(t, handler, "/api/price", map[string]string{
		"platform":  "抖音",
		"category":  "三农",
		"followers": "abc",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad followers: status %d, expected 400", rec.Code)
	}
}

func TestHandleAllPrices(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/prices", map[string]string{
		"category":  "三农",
		"followers": "300000",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp allPricesResponse
	decode(t, rec, &resp)
	if len(resp.Prices) != 4 {
		t.Errorf("expected quotes for 4 platforms, got %d", len(resp.Prices))
	}
	if resp.BestPlatform != "快手" {
		t.Errorf("best platform = %s, expected 快手", resp.BestPlatform)
	}
}

func TestHandleValuation(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/valuation", map[string]string{
		"platform":   "抖音",
		"category":   "三农",
		"followers":  "1000000",
		"adPrice":    "10",
		"growthRate": "0",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp valuationResponse
	decode(t, rec, &resp)
	if resp.SingleAdPrice != 10 {
		t.Errorf("single-ad price echoed as %v, expected 10", resp.SingleAdPrice)
	}
	if resp.Summary == nil || len(resp.Summary.Rows) != 5 {
		t.Fatalf("expected a 5-row summary, got %+v", resp.Summary)
	}
	if resp.Summary.TotalAdCount != 175 {
		t.Errorf("total ad count %d, expected 175", resp.Summary.TotalAdCount)
	}
	if math.Abs(resp.Summary.TotalRevenueWan-2100) > 1e-9 {
		t.Errorf("total revenue %v, expected 2100", resp.Summary.TotalRevenueWan)
	}
}

func TestHandleValuationUnknownPlatform(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/valuation", map[string]string{
		"platform":  "微博",
		"category":  "三农",
		"followers": "1000000",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, expected 404", rec.Code)
	}
}

func TestHandleDevelopment(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/development", map[string]string{
		"platform":  "抖音",
		"category":  "三农",
		"followers": "50000",
		"actualAds": "8",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp developmentResponse
	decode(t, rec, &resp)
	if resp.ExpectedAds != 8 {
		t.Errorf("expected ads = %d, expected 8", resp.ExpectedAds)
	}
	if resp.Ratio != 1 {
		t.Errorf("ratio = %v, expected 1", resp.Ratio)
	}
	if resp.Level != "正常水平" {
		t.Errorf("level = %s, expected 正常水平", resp.Level)
	}
	if resp.Bracket != "1-10万" {
		t.Errorf("bracket = %s, expected 1-10万", resp.Bracket)
	}
}

func TestHandleDevelopmentRejectsNegativeAds(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/development", map[string]string{
		"platform":  "抖音",
		"category":  "三农",
		"followers": "50000",
		"actualAds": "-3",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, expected 400", rec.Code)
	}
}

func TestHandleCatalog(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/catalog", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp catalogResponse
	decode(t, rec, &resp)
	if len(resp.Platforms) != 4 {
		t.Errorf("expected 4 platforms, got %d", len(resp.Platforms))
	}
	if len(resp.Categories) != 32 {
		t.Errorf("expected 32 categories, got %d", len(resp.Categories))
	}
	if len(resp.FollowerBreakpoints) != 7 {
		t.Errorf("expected 7 breakpoints, got %d", len(resp.FollowerBreakpoints))
	}
}

func TestHandleConfigExport(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/config", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/x-yaml" {
		t.Errorf("content type = %s, expected application/x-yaml", ct)
	}
	if !strings.Contains(rec.Body.String(), "address") {
		t.Errorf("config export missing server address: %s", rec.Body.String())
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestServer()
	rec := get(t, handler, "/api/version", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp map[string]string
	decode(t, rec, &resp)
	if resp["version"] != "v1.2.3" {
		t.Errorf("version = %s, expected v1.2.3", resp["version"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/price", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status %d, expected 405", rec.Code)
	}
}
