package handler

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/goleak"

	"severance-engine/internal/engine"
	"severance-engine/internal/model"
)

func TestMain(m *testing.M) {
	// fasthttp refreshes its cached Date header from a sleeping goroutine.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("time.Sleep"))
}

const validBody = `{
	"tenant_id": "t1",
	"case": {
		"gross_salary": "3000.00",
		"hire_date": "2022-01-10",
		"termination_date": "2024-06-20",
		"days_worked_final_month": 20,
		"termination_type": "semJustaCausa",
		"notice_type": "indenizado"
	}
}`

func serve(t *testing.T, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	req.SetBodyString(body)

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)

	New(engine.New(nil, nil), nil).HandleRequest(ctx)
	return ctx
}

func TestSettlementJSON(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/settlements", validBody)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, contentTypeJSON, string(ctx.Response.Header.ContentType()))

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	assert.Equal(t, "t1", resp.CalculationMetadata.TenantID)
	require.NotNil(t, resp.CalculationResult.Settlement)
	assert.Equal(t, 29, resp.CalculationResult.Settlement.ServiceMonths)
	assert.Equal(t, "9744", resp.CalculationResult.Settlement.FundTotal.String())
}

func TestSettlementValidationFailure(t *testing.T) {
	body := strings.Replace(validBody, `"3000.00"`, `"0"`, 1)
	ctx := serve(t, fasthttp.MethodPost, "/settlements/csv", body)

	require.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
	assert.Nil(t, resp.CalculationResult.Settlement)
	require.Len(t, resp.CalculationResult.Messages, 1)
	assert.Equal(t, model.CodeInvalidSalary, resp.CalculationResult.Messages[0].Code)
}

func TestSettlementCSV(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/settlements/csv", validBody)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, contentTypeCSV, string(ctx.Response.Header.ContentType()))
	assert.Contains(t, string(ctx.Response.Header.Peek("Content-Disposition")), "rescisao_simulacao.csv")
	assert.Contains(t, string(ctx.Response.Body()), "TOTAL GERAL;17.657,14")
}

func TestSettlementPDF(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/settlements/pdf", validBody)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, contentTypePDF, string(ctx.Response.Header.ContentType()))
	assert.True(t, bytes.HasPrefix(ctx.Response.Body(), []byte("%PDF-")))
}

func TestBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed body", fasthttp.MethodPost, "/settlements", "{", fasthttp.StatusBadRequest},
		{"wrong method", fasthttp.MethodGet, "/settlements", "", fasthttp.StatusMethodNotAllowed},
		{"unknown path", fasthttp.MethodPost, "/dossiers", validBody, fasthttp.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := serve(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())

			var resp model.ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.Equal(t, tt.status, resp.Status)
		})
	}
}

func TestHealthz(t *testing.T) {
	ctx := serve(t, fasthttp.MethodGet, "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ok", string(ctx.Response.Body()))
}
