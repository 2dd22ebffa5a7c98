package handler

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"severance-engine/internal/engine"
	"severance-engine/internal/export"
	"severance-engine/internal/model"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypePDF  = "application/pdf"
)

type Handler struct {
	engine *engine.Engine
	log    *zap.Logger
}

func New(e *engine.Engine, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{engine: e, log: log}
}

// HandleRequest routes settlement requests. It satisfies
// fasthttp.RequestHandler.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case "/settlements":
		h.handleCalculation(ctx, writeJSONResult)
	case "/settlements/csv":
		h.handleCalculation(ctx, writeCSVResult)
	case "/settlements/pdf":
		h.handleCalculation(ctx, writePDFResult)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

type resultWriter func(ctx *fasthttp.RequestCtx, resp *model.CalculationResponse) error

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx, write resultWriter) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(&req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	if err := write(ctx, resp); err != nil {
		h.log.Error("failed to render settlement",
			zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
			zap.ByteString("path", ctx.Path()),
			zap.Error(err),
		)
		ctx.ResetBody()
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to render settlement")
	}
}

func writeJSONResult(ctx *fasthttp.RequestCtx, resp *model.CalculationResponse) error {
	writeJSON(ctx, fasthttp.StatusOK, resp)
	return nil
}

func writeCSVResult(ctx *fasthttp.RequestCtx, resp *model.CalculationResponse) error {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, *resp.CalculationResult.Settlement); err != nil {
		return err
	}
	writeAttachment(ctx, contentTypeCSV, "rescisao_simulacao.csv", buf.Bytes())
	return nil
}

func writePDFResult(ctx *fasthttp.RequestCtx, resp *model.CalculationResponse) error {
	var buf bytes.Buffer
	if err := export.WritePDF(&buf, *resp.CalculationResult.Settlement); err != nil {
		return err
	}
	writeAttachment(ctx, contentTypePDF, "rescisao_simulacao.pdf", buf.Bytes())
	return nil
}

func writeAttachment(ctx *fasthttp.RequestCtx, contentType, filename string, body []byte) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentType)
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.SetBody(body)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
