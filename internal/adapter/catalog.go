package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/isavelev/go-cart-keeper/internal/config"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/models"
)

type httpCatalogAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// productPage is the wire shape of the catalog's list endpoint.
type productPage struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// NewHTTPCatalogAdapter constructs an HTTP implementation of [CatalogAdapter].
// It normalises and validates the base URL from adapterCfg.CatalogBaseURL and
// configures the underlying client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.CatalogBaseURL is empty or cannot be parsed
// as a valid URL.
func NewHTTPCatalogAdapter(adapterCfg config.Adapter, log *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CatalogBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpCatalogAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListProducts implements [CatalogAdapter]. It GETs one page from /products
// and decodes the page envelope. Returns an error if the request fails, the
// server returns a non-2xx status, or the body cannot be decoded.
func (h *httpCatalogAdapter) ListProducts(ctx context.Context, limit, skip int) ([]models.Product, error) {
	req := h.client.R().SetContext(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(skip))
	}

	resp, err := req.Get("/products")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var page productPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode products page: %w", err)
	}

	return page.Products, nil
}

// GetProduct implements [CatalogAdapter]. It GETs /products/{id}. Returns
// ErrProductNotFound when the catalog has no product with the given id.
func (h *httpCatalogAdapter) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/products/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Product{}, fmt.Errorf("get product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = json.Unmarshal(resp.Body(), &product); err != nil {
		return models.Product{}, fmt.Errorf("decode product: %w", err)
	}

	return product, nil
}

// ListCategories implements [CatalogAdapter]. It GETs /products/category-list
// and decodes the flat label array.
func (h *httpCatalogAdapter) ListCategories(ctx context.Context) ([]string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/products/category-list")
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var categories []string
	if err = json.Unmarshal(resp.Body(), &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	return categories, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return ErrProductNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d", ErrCatalogUnavailable, resp.StatusCode())
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
