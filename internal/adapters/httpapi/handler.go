// Package httpapi serves palindrome checks over HTTP with fasthttp.
package httpapi

import (
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/baditaflorin/go_palindrome/internal/metrics"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// Request is the body accepted by /check and /normalize.
type Request struct {
	Text string `json:"text"`
}

// CheckResponse is the body returned by /check.
type CheckResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Palindrome bool   `json:"palindrome"`
	Length     int    `json:"length"`
}

// NormalizeResponse is the body returned by /normalize.
type NormalizeResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler routes requests to the evaluator.
type Handler struct {
	logger     ports.Logger
	evaluator  ports.Evaluator
	normalizer ports.Normalizer
	metrics    fasthttp.RequestHandler
}

// NewHandler creates the HTTP handler.
func NewHandler(logger ports.Logger, evaluator ports.Evaluator, normalizer ports.Normalizer) *Handler {
	return &Handler{
		logger:     logger,
		evaluator:  evaluator,
		normalizer: normalizer,
		metrics:    fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// ServeFastHTTP is the main fasthttp request handler
func (h *Handler) ServeFastHTTP(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Server", "PalindromeServer")

	switch string(ctx.Path()) {
	case "/health":
		h.handleHealthCheck(ctx)
	case "/check":
		h.handleCheck(ctx)
	case "/normalize":
		h.handleNormalize(ctx)
	case "/metrics":
		h.metrics(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		h.writeJSONError(ctx, "Not found")
	}

	h.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (h *Handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) handleCheck(ctx *fasthttp.RequestCtx) {
	req, ok := h.parseRequest(ctx)
	if !ok {
		return
	}

	result := h.evaluator.Evaluate(req.Text)
	metrics.ObserveEvaluation(metrics.SourceHTTP, result)

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, CheckResponse{
		Text:       result.Input,
		Normalized: result.Normalized,
		Palindrome: result.Palindrome,
		Length:     result.Length,
	})
}

func (h *Handler) handleNormalize(ctx *fasthttp.RequestCtx) {
	req, ok := h.parseRequest(ctx)
	if !ok {
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, NormalizeResponse{
		Text:       req.Text,
		Normalized: h.normalizer.Normalize(req.Text),
	})
}

// parseRequest accepts POST bodies only. An empty text is a valid request.
func (h *Handler) parseRequest(ctx *fasthttp.RequestCtx) (Request, bool) {
	var req Request
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed")
		return req, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error())
		return req, false
	}
	return req, true
}

func (h *Handler) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		h.writeJSONError(ctx, "Internal server error")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (h *Handler) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	body, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		h.logger.Error("Error marshaling JSON error response", "error", err)
		body = []byte(`{"error":"Internal server error"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
