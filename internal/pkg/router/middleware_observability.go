package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/formcheck/internal/pkg/config"
	"github.com/shandysiswandi/formcheck/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// bodyLogLimit caps how much of a request or response body ends up in logs.
const bodyLogLimit = 32 << 10

// responseCapture remembers what a handler wrote so it can be logged and
// measured after the handler returns.
type responseCapture struct {
	http.ResponseWriter
	status    int
	written   int
	body      bytes.Buffer
	truncated bool
	err       error
}

func (c *responseCapture) WriteHeader(code int) {
	c.status = code
	c.ResponseWriter.WriteHeader(code)
}

func (c *responseCapture) Write(p []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	c.keep(p)

	n, err := c.ResponseWriter.Write(p)
	c.written += n
	return n, err
}

func (c *responseCapture) keep(p []byte) {
	if c.truncated {
		return
	}
	room := bodyLogLimit - c.body.Len()
	if len(p) > room {
		p = p[:max(room, 0)]
		c.truncated = true
	}
	c.body.Write(p)
}

// SetError lets the response writers attach the handler error to the span.
func (c *responseCapture) SetError(err error) { c.err = err }

func (c *responseCapture) Flush() {
	if f, ok := c.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (c *responseCapture) statusCode() int {
	if c.status == 0 {
		return http.StatusOK
	}
	return c.status
}

func (c *responseCapture) loggedBody(maskKeys map[string]struct{}) any {
	body := maskedBody(c.body.Bytes(), maskKeys)
	if !c.truncated {
		return body
	}
	return map[string]any{"body": body, "truncated": true}
}

func matchedRoutePath(r *http.Request) string {
	if pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); pattern != "" {
		return pattern
	}
	return r.URL.Path
}

// maskedBody decodes a JSON body so masked keys can be hidden. Non-JSON text
// is logged as is and binary payloads are replaced by a placeholder.
func maskedBody(body []byte, maskKeys map[string]struct{}) any {
	if len(body) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return instrument.MaskData(decoded, maskKeys)
	}

	if !utf8.Valid(body) {
		return "<binary body omitted>"
	}
	return string(body)
}

func maskHeaders(headers http.Header, maskKeys map[string]struct{}) http.Header {
	if len(maskKeys) == 0 {
		return headers
	}

	masked := headers.Clone()
	for key := range masked {
		if _, hidden := maskKeys[strings.ToLower(key)]; hidden {
			masked.Set(key, "***")
		}
	}
	return masked
}

// peekBody reads up to bodyLogLimit bytes for logging and puts them back in
// front of the remaining stream so the handler still sees the full body.
func peekBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}

	//nolint:errcheck // logging only
	head, _ := io.ReadAll(io.LimitReader(r.Body, bodyLogLimit))
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(head), r.Body))
	return head
}

type httpTelemetry struct {
	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
	maskKeys map[string]struct{}
}

func newHTTPTelemetry(cfg config.Config, ins instrument.Instrumentation) *httpTelemetry {
	t := &httpTelemetry{
		tracer:   ins.Tracer("http.server"),
		maskKeys: map[string]struct{}{},
	}
	if cfg != nil {
		t.maskKeys = instrument.BuildMaskKeys(cfg.GetArray("instrument.log_mask_fields"))
	}

	meter := ins.Meter("http.server")
	var err error
	if t.requests, err = meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests received")); err != nil {
		slog.Error("failed to create http request counter", "error", err)
	}
	if t.duration, err = meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration in milliseconds")); err != nil {
		slog.Error("failed to create http duration histogram", "error", err)
	}
	return t
}

func (t *httpTelemetry) finish(ctx context.Context, span trace.Span, r *http.Request, route string, c *responseCapture, elapsed time.Duration) {
	status := c.statusCode()
	attrs := []attribute.KeyValue{
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String(route),
		semconv.HTTPResponseStatusCodeKey.Int(status),
	}

	if c.err != nil {
		span.RecordError(c.err)
	}
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(append(attrs, attribute.Int("http.response_content_length", c.written))...)

	if t.requests != nil {
		t.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	if t.duration != nil {
		t.duration.Record(ctx, float64(elapsed.Milliseconds()), metric.WithAttributes(attrs...))
	}

	slog.InfoContext(ctx, "response sent",
		"method", r.Method,
		"path", route,
		"status", status,
		"bytes", c.written,
		"latency_ms", elapsed.Milliseconds(),
		"body", c.loggedBody(t.maskKeys),
	)
}

func middlewareObservability(cfg config.Config, ins instrument.Instrumentation) Middleware {
	t := newHTTPTelemetry(cfg, ins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := matchedRoutePath(r)

			ctx, span := t.tracer.Start(r.Context(), r.Method+" "+route, trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(route),
			))
			defer span.End()

			slog.InfoContext(ctx, "request received",
				"method", r.Method,
				"path", route,
				"uri", r.RequestURI,
				"headers", maskHeaders(r.Header, t.maskKeys),
				"body", maskedBody(peekBody(r), t.maskKeys),
			)

			capture := &responseCapture{ResponseWriter: w}
			next.ServeHTTP(capture, r.WithContext(ctx))

			t.finish(ctx, span, r, route, capture, time.Since(start))
		})
	}
}
