// Package server exposes the pricing and valuation engine over an HTTP
// JSON API. The reference tables are built once when the handler is
// constructed and shared read-only across all requests.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Aurelian-Chen/NovasX/internal/advolume"
	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/internal/config"
	"github.com/Aurelian-Chen/NovasX/internal/pricing"
	"github.com/Aurelian-Chen/NovasX/internal/valuation"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
	"github.com/Aurelian-Chen/NovasX/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger  *zap.Logger
	conf    *config.Configuration
	table   *pricing.Table
	matrix  *advolume.Matrix
	model   *valuation.Model
	version string
}

// NewHandler constructs the HTTP handler serving the pricing API.
func NewHandler(logger *zap.Logger, conf *config.Configuration, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = &config.Configuration{}
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	matrix := advolume.NewMatrix()
	h := &handler{
		logger:  logger,
		conf:    conf,
		table:   pricing.NewTable(logger),
		matrix:  matrix,
		model:   valuation.NewModel(logger, matrix),
		version: trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/price", h.handlePrice)
	mux.HandleFunc("/api/prices", h.handleAllPrices)
	mux.HandleFunc("/api/valuation", h.handleValuation)
	mux.HandleFunc("/api/development", h.handleDevelopment)
	mux.HandleFunc("/api/catalog", h.handleCatalog)
	mux.HandleFunc("/api/config", h.handleConfigExport)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type priceResponse struct {
	Platform  string  `json:"platform"`
	Category  string  `json:"category"`
	Followers float64 `json:"followers"`
	Celebrity bool    `json:"celebrity,omitempty"`
	Price     float64 `json:"price"`
}

type allPricesResponse struct {
	Category     string             `json:"category"`
	Followers    float64            `json:"followers"`
	Prices       map[string]float64 `json:"prices"`
	BestPlatform string             `json:"bestPlatform"`
}

type valuationResponse struct {
	Platform      string             `json:"platform"`
	Category      string             `json:"category"`
	SingleAdPrice float64            `json:"singleAdPriceWan"`
	Summary       *valuation.Summary `json:"summary"`
}

type developmentResponse struct {
	Platform    string  `json:"platform"`
	Category    string  `json:"category"`
	Bracket     string  `json:"bracket"`
	ExpectedAds int     `json:"expectedAds"`
	ActualAds   int     `json:"actualAds"`
	Ratio       float64 `json:"ratio"`
	Level       string  `json:"level"`
}

type catalogResponse struct {
	Platforms           []string  `json:"platforms"`
	Categories          []string  `json:"categories"`
	FollowerBreakpoints []float64 `json:"followerBreakpoints"`
}

func (h *handler) handlePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	platform := catalog.Platform(r.URL.Query().Get("platform"))
	category, followers, err := h.categoryAndFollowers(r)
	if err != nil {
		h.respondDomainError(w, err, "server.handlePrice")
		return
	}
	celebrity := parseBoolParam(r, "celebrity")

	price, err := h.table.Price(platform, category, followers, celebrity)
	if err != nil {
		h.respondDomainError(w, err, "server.handlePrice")
		return
	}

	h.writeJSON(w, http.StatusOK, priceResponse{
		Platform:  string(platform),
		Category:  string(category),
		Followers: float64(followers),
		Celebrity: celebrity,
		Price:     price,
	})
}

func (h *handler) handleAllPrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	category, followers, err := h.categoryAndFollowers(r)
	if err != nil {
		h.respondDomainError(w, err, "server.handleAllPrices")
		return
	}
	celebrity := parseBoolParam(r, "celebrity")

	prices, err := h.table.AllPlatformPrices(category, followers, celebrity)
	if err != nil {
		h.respondDomainError(w, err, "server.handleAllPrices")
		return
	}
	best, _, err := h.table.BestPlatform(category, followers, celebrity)
	if err != nil {
		h.respondDomainError(w, err, "server.handleAllPrices")
		return
	}

	out := make(map[string]float64, len(prices))
	for platform, price := range prices {
		out[string(platform)] = price
	}
	h.writeJSON(w, http.StatusOK, allPricesResponse{
		Category:     string(category),
		Followers:    float64(followers),
		Prices:       out,
		BestPlatform: string(best),
	})
}

func (h *handler) handleValuation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	platform, err := catalog.ParsePlatform(r.URL.Query().Get("platform"))
	if err != nil {
		h.respondDomainError(w, err, "server.handleValuation")
		return
	}
	category, followers, err := h.categoryAndFollowers(r)
	if err != nil {
		h.respondDomainError(w, err, "server.handleValuation")
		return
	}

	opts := valuation.Options{}
	if raw := r.URL.Query().Get("adPrice"); raw != "" {
		price, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid adPrice: %s", raw))
			return
		}
		opts.SingleAdPriceWan = &price
	}
	if raw := r.URL.Query().Get("growthRate"); raw != "" {
		rate, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid growthRate: %s", raw))
			return
		}
		opts.GrowthRate = &rate
	}

	summary, err := h.model.SummaryTable(followers, platform, category, opts)
	if err != nil {
		h.respondDomainError(w, err, "server.handleValuation")
		return
	}

	adPrice := 0.0
	if opts.SingleAdPriceWan != nil {
		adPrice = *opts.SingleAdPriceWan
	} else if adPrice, err = h.model.ProjectedAdValue(followers.Wan(), platform, category); err != nil {
		h.respondDomainError(w, err, "server.handleValuation")
		return
	}

	h.writeJSON(w, http.StatusOK, valuationResponse{
		Platform:      string(platform),
		Category:      string(category),
		SingleAdPrice: adPrice,
		Summary:       summary,
	})
}

func (h *handler) handleDevelopment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	platform, err := catalog.ParsePlatform(r.URL.Query().Get("platform"))
	if err != nil {
		h.respondDomainError(w, err, "server.handleDevelopment")
		return
	}
	category, followers, err := h.categoryAndFollowers(r)
	if err != nil {
		h.respondDomainError(w, err, "server.handleDevelopment")
		return
	}
	actualAds, err := strconv.Atoi(r.URL.Query().Get("actualAds"))
	if err != nil || actualAds < 0 {
		h.respondError(w, http.StatusBadRequest, "actualAds must be a non-negative integer")
		return
	}

	fans := followers.Wan()
	expected := h.matrix.ExpectedAdCount(platform, category, fans)
	ratio := h.matrix.DevelopmentRatio(platform, category, fans, actualAds)

	h.writeJSON(w, http.StatusOK, developmentResponse{
		Platform:    string(platform),
		Category:    string(category),
		Bracket:     advolume.BracketFor(fans).String(),
		ExpectedAds: expected,
		ActualAds:   actualAds,
		Ratio:       ratio,
		Level:       advolume.LevelFor(ratio).String(),
	})
}

func (h *handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	platforms := make([]string, 0, len(catalog.Platforms()))
	for _, platform := range catalog.Platforms() {
		platforms = append(platforms, string(platform))
	}
	categories := make([]string, 0, len(catalog.Categories()))
	for _, category := range catalog.Categories() {
		categories = append(categories, string(category))
	}
	breakpoints := make([]float64, 0)
	for _, bp := range h.table.FollowerBreakpoints() {
		breakpoints = append(breakpoints, float64(bp))
	}

	h.writeJSON(w, http.StatusOK, catalogResponse{
		Platforms:           platforms,
		Categories:          categories,
		FollowerBreakpoints: breakpoints,
	})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	data, err := yaml.Marshal(h.conf)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("failed to write config export",
			zap.String("op", "server.handleConfigExport"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// categoryAndFollowers parses the two parameters every endpoint shares.
func (h *handler) categoryAndFollowers(r *http.Request) (catalog.Category, units.Followers, error) {
	category, err := catalog.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		return "", 0, err
	}
	followers, err := validation.ParseFollowers(r.URL.Query().Get("followers"))
	if err != nil {
		return "", 0, err
	}
	return category, followers, nil
}

func parseBoolParam(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && value
}

// respondDomainError maps the engine's sentinel errors onto HTTP statuses:
// malformed input is a 400, unknown keys are 404s.
func (h *handler) respondDomainError(w http.ResponseWriter, err error, op string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, catalog.ErrUnknownCategory), errors.Is(err, catalog.ErrUnknownPlatform):
		status = http.StatusNotFound
	}
	h.logger.Debug("request rejected",
		zap.String("op", op),
		zap.Error(err),
	)
	h.respondError(w, status, err.Error())
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
