// Package taxregistry fetches the yearly INSS and IRRF tables from a remote
// registry. Fetched tables are cached per year for the life of the process.
package taxregistry

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"severance-engine/internal/config"
)

const defaultTimeout = 2 * time.Second

// Registry serves GET {base}/tables/{year} lookups.
type Registry struct {
	baseURL string
	client  *fasthttp.Client
	timeout time.Duration
	cache   sync.Map // year -> config.TaxConfig
}

func New(baseURL string) *Registry {
	return &Registry{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			MaxIdleConnDuration: 90 * time.Second,
		},
		timeout: defaultTimeout,
	}
}

// Tables returns the tables published for year. When the registry is not
// configured it returns fallback; on any fetch or validation failure it
// returns fallback together with the error.
func (r *Registry) Tables(year int, fallback config.TaxConfig) (config.TaxConfig, error) {
	if r == nil || r.baseURL == "" {
		return fallback, nil
	}

	if cached, ok := r.cache.Load(year); ok {
		return cached.(config.TaxConfig), nil
	}

	tables, err := r.fetch(year)
	if err != nil {
		return fallback, err
	}
	tables.RegistryURL = fallback.RegistryURL

	r.cache.Store(year, tables)
	return tables, nil
}

func (r *Registry) fetch(year int) (config.TaxConfig, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.baseURL + "/tables/" + strconv.Itoa(year))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		return config.TaxConfig{}, fmt.Errorf("fetch tables %d: %w", year, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return config.TaxConfig{}, fmt.Errorf("fetch tables %d: status %d", year, resp.StatusCode())
	}

	var tables config.TaxConfig
	if err := json.Unmarshal(resp.Body(), &tables); err != nil {
		return config.TaxConfig{}, fmt.Errorf("decode tables %d: %w", year, err)
	}
	if err := tables.Validate(); err != nil {
		return config.TaxConfig{}, fmt.Errorf("tables %d: %w", year, err)
	}
	return tables, nil
}
