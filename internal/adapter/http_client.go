// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu             sync.RWMutex
	token          string
	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for cfg.APIURL. Every path is resolved below "/api".
//
// Returns an error wrapping [ErrInvalidAPIURL] if the address cannot be
// parsed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAPIURL, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL+"/api", cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimSuffix(strings.TrimRight(u.String(), "/"), "/api"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) OnUnauthorized(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = fn
}

func (h *httpServerAdapter) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("return_token", "true").
		SetBody(data).
		Post("/auth/register")

	return decode[models.AuthResponse](h.check(resp, err, false, "register"))
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("return_token", "true").
		SetBody(creds).
		Post("/auth/login")

	return decode[models.AuthResponse](h.check(resp, err, false, "login"))
}

func (h *httpServerAdapter) Refresh(ctx context.Context) (models.AuthResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("return_token", "true").
		Post("/auth/refresh")

	return decode[models.AuthResponse](h.check(resp, err, true, "refresh"))
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/me")
	return decode[models.User](h.check(resp, err, true, "me"))
}

func (h *httpServerAdapter) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	resp, err := h.authedRequest(ctx).Get("/dashboard/stats")
	return decode[models.DashboardStats](h.check(resp, err, true, "dashboard stats"))
}

func (h *httpServerAdapter) Activity(ctx context.Context, limit int) ([]models.ActivityItem, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/dashboard/activity")
	return decode[[]models.ActivityItem](h.check(resp, err, true, "activity"))
}

func (h *httpServerAdapter) ListCompliance(ctx context.Context, filter models.ComplianceFilter) ([]models.ComplianceItem, error) {
	req := h.authedRequest(ctx)
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Priority != "" {
		req.SetQueryParam("priority", string(filter.Priority))
	}

	resp, err := req.Get("/compliance")
	return decode[[]models.ComplianceItem](h.check(resp, err, true, "list compliance"))
}

func (h *httpServerAdapter) GetCompliance(ctx context.Context, id string) (models.ComplianceItem, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/compliance/{id}")
	return decode[models.ComplianceItem](h.check(resp, err, true, "get compliance"))
}

func (h *httpServerAdapter) CreateCompliance(ctx context.Context, dto models.CreateComplianceDto) (models.ComplianceItem, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(dto).
		Post("/compliance")
	return decode[models.ComplianceItem](h.check(resp, err, true, "create compliance"))
}

func (h *httpServerAdapter) UpdateCompliance(ctx context.Context, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(dto).
		Put("/compliance/{id}")
	return decode[models.ComplianceItem](h.check(resp, err, true, "update compliance"))
}

func (h *httpServerAdapter) DeleteCompliance(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/compliance/{id}")
	_, err = h.check(resp, err, true, "delete compliance")
	return err
}

func (h *httpServerAdapter) Analyze(ctx context.Context, text string) (models.DocumentAnalysis, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(models.AnalyzeRequest{Text: text}).
		Post("/ai/analyze")
	return decode[models.DocumentAnalysis](h.check(resp, err, true, "analyze"))
}

func (h *httpServerAdapter) AssessRisk(ctx context.Context, req models.RiskAssessmentRequest) (models.RiskAssessment, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/ai/assess-risk")
	return decode[models.RiskAssessment](h.check(resp, err, true, "assess risk"))
}

func (h *httpServerAdapter) CreateDocumentFromText(ctx context.Context, doc models.CreateDocumentFromText) (models.Document, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(doc).
		Post("/documents/text")
	return decode[models.Document](h.check(resp, err, true, "create document"))
}

func (h *httpServerAdapter) ListDocuments(ctx context.Context) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).Get("/documents")
	return decode[[]models.Document](h.check(resp, err, true, "list documents"))
}

func (h *httpServerAdapter) GetDocument(ctx context.Context, id string) (models.Document, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/documents/{id}")
	return decode[models.Document](h.check(resp, err, true, "get document"))
}

func (h *httpServerAdapter) DocumentContent(ctx context.Context, id string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Accept", "text/plain").
		Get("/documents/{id}/content")
	resp, err = h.check(resp, err, true, "document content")
	if err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	resp, err = h.check(resp, err, false, "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// check turns transport failures and non-2xx statuses into errors. A 401 on
// an authenticated call drops the token and fires the unauthorized hook.
func (h *httpServerAdapter) check(resp *resty.Response, err error, authed bool, op string) (*resty.Response, error) {
	if err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", op, err)
	}

	h.logger.Debug().
		Str("op", op).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("request done")

	if err = mapHTTPError(resp); err != nil {
		if authed && resp.StatusCode() == http.StatusUnauthorized {
			h.dropSession()
		}
		return nil, err
	}

	return resp, nil
}

func (h *httpServerAdapter) dropSession() {
	h.mu.Lock()
	h.token = ""
	fn := h.onUnauthorized
	h.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func decode[T any](resp *resty.Response, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
