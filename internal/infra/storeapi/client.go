package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/domain/member"
	"pos-gateway/internal/domain/promotion"
	"pos-gateway/internal/infra"
	"pos-gateway/internal/pkg/config"
	"pos-gateway/internal/usecase/commands"
)

// Client talks to the remote store backend that owns the catalog, promotions,
// members and transactions. The gateway never caches authoritative data here;
// every call forwards the cashier's bearer token.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.StoreAPIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *Client) SearchProducts(ctx context.Context, token, q, barcode string) ([]catalog.Product, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	if barcode != "" {
		query.Set("barcode", barcode)
	}

	var rows []productWire
	if err := c.do(ctx, http.MethodGet, "/api/products", query, token, nil, &rows); err != nil {
		return nil, err
	}
	return toProducts(rows), nil
}

func (c *Client) ActivePromotions(ctx context.Context, token string) ([]*promotion.Promotion, error) {
	query := url.Values{}
	query.Set("active_only", "true")

	var rows []promotionWire
	if err := c.do(ctx, http.MethodGet, "/api/promotions", query, token, nil, &rows); err != nil {
		return nil, err
	}

	promos := make([]*promotion.Promotion, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, infra.WrapUpstreamErr("malformed promotion record", err, infra.KindBadResponse)
		}
		promos = append(promos, p)
	}
	return promos, nil
}

func (c *Client) SearchMembers(ctx context.Context, token, q string) ([]member.Snapshot, error) {
	query := url.Values{}
	query.Set("q", q)

	var rows []memberWire
	if err := c.do(ctx, http.MethodGet, "/api/members", query, token, nil, &rows); err != nil {
		return nil, err
	}
	return toMemberSnapshots(rows), nil
}

func (c *Client) CreateMember(ctx context.Context, token string, name member.Name, phone member.Phone) (*member.Snapshot, error) {
	body := map[string]string{
		"name":  name.String(),
		"phone": phone.String(),
	}

	var row memberWire
	if err := c.do(ctx, http.MethodPost, "/api/members", nil, token, body, &row); err != nil {
		return nil, err
	}
	snap := row.toSnapshot()
	return &snap, nil
}

func (c *Client) CreateTransaction(ctx context.Context, token string, req commands.TransactionRequest) (*commands.TransactionResult, error) {
	var result commands.TransactionResult
	if err := c.do(ctx, http.MethodPost, "/api/transactions", nil, token, req, &result); err != nil {
		return nil, err
	}
	if result.TransactionID == 0 {
		// 2xx with a shape we don't recognize: fail loudly, apply nothing.
		return nil, infra.WrapUpstreamErr("transaction response missing transaction_id", nil, infra.KindBadResponse)
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapUpstreamErr("failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return infra.WrapUpstreamErr("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("store API unreachable", "method", method, "path", path, "error", err)
		return infra.WrapUpstreamErr("store API unreachable", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapUpstreamErr("failed to read response", err, infra.KindUnavailable)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(method, path, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return infra.WrapUpstreamErr("unexpected response shape", err, infra.KindBadResponse)
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, body []byte) error {
	msg := extractMessage(body)

	c.logger.Warn("store API rejected request",
		"method", method, "path", path, "status", status, "detail", msg)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.WrapUpstreamErr(fallback(msg, "not authorized"), nil, infra.KindUnauthorized)
	case status == http.StatusNotFound:
		return infra.WrapUpstreamErr(fallback(msg, "not found"), nil, infra.KindNotFound)
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return infra.WrapUpstreamErr(fallback(msg, "request rejected"), nil, infra.KindRejected)
	default:
		return infra.WrapUpstreamErr(fallback(msg, "store API error"), nil, infra.KindUpstreamFailure)
	}
}

func fallback(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
