package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"lingua-proxy/domain/entity"
	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
)

// Timeouts holds the per-kind deadline budgets.
type Timeouts struct {
	Translate  time.Duration
	Analyze    time.Duration
	Synthesize time.Duration
}

// DefaultTimeouts returns the standard deadline budgets.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Translate:  15 * time.Second,
		Analyze:    15 * time.Second,
		Synthesize: 25 * time.Second,
	}
}

// Dispatcher orchestrates a client request: validation, cache consult,
// deadline-bounded proxy call, failure normalization. Dispatch always
// produces a response; no error ever escapes to the caller.
type Dispatcher struct {
	cache    port.TranslationCache
	caller   port.ProxyCaller
	logger   port.Logger
	timeouts Timeouts
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(cache port.TranslationCache, caller port.ProxyCaller, logger port.Logger, timeouts Timeouts) *Dispatcher {
	if timeouts.Translate <= 0 {
		timeouts = DefaultTimeouts()
	}
	return &Dispatcher{
		cache:    cache,
		caller:   caller,
		logger:   logger,
		timeouts: timeouts,
	}
}

// Dispatch processes one request and returns its normalized response.
func (d *Dispatcher) Dispatch(ctx context.Context, req entity.Request) entity.ProxyResponse {
	text := req.TrimmedText()

	// Validation order is part of the contract: empty text wins over length,
	// length wins over kind. Violated requests never reach the network.
	if text == "" {
		return failure(domainerror.NewEmptyText())
	}
	if n := utf8.RuneCountInString(text); n > entity.MaxTextLength {
		return failure(domainerror.NewTextTooLong(n))
	}

	switch req.Kind {
	case entity.KindTranslate:
		return d.translate(ctx, req, text)
	case entity.KindAnalyze:
		return d.analyze(ctx, text)
	case entity.KindSynthesize:
		return d.synthesize(ctx, req, text)
	default:
		return failure(domainerror.NewUnknownKind(string(req.Kind)))
	}
}

func (d *Dispatcher) translate(ctx context.Context, req entity.Request, text string) entity.ProxyResponse {
	target := req.TargetOrDefault()
	key := entity.Fingerprint(entity.KindTranslate, target, text)

	cached, ok, err := d.cache.Get(key)
	if err != nil {
		// a broken cache read is a miss, not an aborted request
		d.logger.Warn("cache read failed", port.Error(err))
	} else if ok {
		return entity.NewTranslationResponse(cached, true)
	}

	payload := map[string]any{"text": text, "target": target}
	result, perr := d.call(ctx, payload, d.timeouts.Translate)
	if perr != nil {
		return failure(perr)
	}

	var body struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(result.Body, &body); err != nil || body.Translation == "" {
		return failure(domainerror.New(domainerror.CodeInvalidResponse, "proxy response has no translation").
			WithRaw(string(result.Body)))
	}

	if err := d.cache.Put(key, body.Translation); err != nil {
		d.logger.Warn("cache write failed", port.Error(err))
	}
	return entity.NewTranslationResponse(body.Translation, false)
}

func (d *Dispatcher) analyze(ctx context.Context, text string) entity.ProxyResponse {
	payload := map[string]any{"text": text, "action": "analyze"}
	result, perr := d.call(ctx, payload, d.timeouts.Analyze)
	if perr != nil {
		return failure(perr)
	}

	var body struct {
		Analysis map[string]any `json:"analysis"`
	}
	if err := json.Unmarshal(result.Body, &body); err != nil || body.Analysis == nil {
		return failure(domainerror.New(domainerror.CodeNoAnalysis, "proxy response has no analysis").
			WithRaw(string(result.Body)))
	}

	return entity.NewAnalysisResponse(body.Analysis)
}

func (d *Dispatcher) synthesize(ctx context.Context, req entity.Request, text string) entity.ProxyResponse {
	payload := map[string]any{"text": text, "tts": true}
	if req.Voice != "" {
		payload["voice"] = req.Voice
	}
	result, perr := d.call(ctx, payload, d.timeouts.Synthesize)
	if perr != nil {
		return failure(perr)
	}

	var body struct {
		Audio string `json:"audio"`
		Mime  string `json:"mime"`
	}
	if err := json.Unmarshal(result.Body, &body); err != nil || body.Audio == "" {
		return failure(domainerror.New(domainerror.CodeNoAudio, "proxy response has no audio").
			WithRaw(string(result.Body)))
	}
	if body.Mime == "" {
		body.Mime = "audio/mpeg"
	}

	return entity.NewAudioResponse(body.Audio, body.Mime)
}

// call runs the proxy call under the given deadline and normalizes transport
// outcomes. A non-2xx handler response becomes proxy_error carrying status
// and body.
func (d *Dispatcher) call(ctx context.Context, payload map[string]any, timeout time.Duration) (*port.CallResult, *domainerror.ProxyError) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	result, err := d.caller.Call(callCtx, payload)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			d.logger.Warn("proxy call timed out", port.Duration("elapsed", time.Since(start)))
			return nil, domainerror.NewTimeout()
		}
		return nil, domainerror.NewRequestFailed(err)
	}

	if !result.Success() {
		return nil, domainerror.NewProxyUpstreamError(result.Status, string(result.Body))
	}
	return result, nil
}

func failure(err *domainerror.ProxyError) entity.ProxyResponse {
	detail := err.Message
	if err.Code == domainerror.CodeProxyError && err.Raw != "" {
		// for proxy errors the handler's response body is the message
		detail = err.Raw
	}
	return entity.NewFailureResponse(entity.Failure{
		Code:   string(err.Code),
		Detail: detail,
		Status: err.UpstreamStatus,
		Raw:    err.Raw,
	})
}
