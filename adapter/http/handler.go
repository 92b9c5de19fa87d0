package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"lingua-proxy/application/service"
	"lingua-proxy/application/service/modelout"
	"lingua-proxy/domain/entity"
	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
	"lingua-proxy/domain/service/classify"
)

// optional array fields defaulted after analysis parsing so consumers never
// observe a missing value
var analysisArrayFields = []string{"synonyms", "antonyms", "examples", "words"}

// ProxyHandler is the stateless server-side entry point. It validates the
// inbound payload independently of the client, routes it to an action, and
// converts provider output into the wire response.
type ProxyHandler struct {
	config    port.ConfigProvider
	chat      port.ChatProvider
	speech    port.SpeechProvider
	prompts   *service.PromptBuilder
	presenter *ErrorPresenter
	logger    port.Logger
}

// NewProxyHandler creates a proxy handler.
func NewProxyHandler(
	config port.ConfigProvider,
	chat port.ChatProvider,
	speech port.SpeechProvider,
	prompts *service.PromptBuilder,
	presenter *ErrorPresenter,
	logger port.Logger,
) *ProxyHandler {
	return &ProxyHandler{
		config:    config,
		chat:      chat,
		speech:    speech,
		prompts:   prompts,
		presenter: presenter,
		logger:    logger,
	}
}

// proxyRequest is the inbound wire payload.
type proxyRequest struct {
	Text   string `json:"text"`
	Target string `json:"target,omitempty"`
	Action string `json:"action,omitempty"`
	TTS    bool   `json:"tts,omitempty"`
	Voice  string `json:"voice,omitempty"`
}

func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	// preflight wins over everything else, always 200
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	reqID := generateRequestID()
	log := h.logger.With(port.String("req_id", reqID))

	if r.Method != http.MethodPost {
		h.presenter.WriteError(w, domainerror.NewMethodNotAllowed(r.Method).WithReqID(reqID))
		return
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.presenter.WriteError(w, domainerror.NewInvalidJSON(err).WithReqID(reqID))
		return
	}
	defer r.Body.Close()

	var req proxyRequest
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		h.presenter.WriteError(w, domainerror.NewInvalidJSON(err).WithReqID(reqID))
		return
	}

	// the server re-validates; client-side validation is not trusted
	text := strings.TrimSpace(req.Text)
	if text == "" {
		h.presenter.WriteError(w, domainerror.NewMissingText().WithReqID(reqID))
		return
	}
	if n := utf8.RuneCountInString(text); n > entity.MaxTextLength {
		h.presenter.WriteError(w, domainerror.NewTextTooLong(n).WithReqID(reqID))
		return
	}

	start := time.Now()
	switch {
	case req.Action == "analyze":
		h.handleAnalyze(w, r, log, reqID, text)
	case req.TTS:
		h.handleSynthesize(w, r, log, reqID, text, req.Voice)
	default:
		h.handleTranslate(w, r, log, reqID, text, req.Target)
	}
	log.Debug("request handled", port.Duration("elapsed", time.Since(start)))
}

func (h *ProxyHandler) handleTranslate(w http.ResponseWriter, r *http.Request, log port.Logger, reqID, text, target string) {
	if !h.config.Get().ChatConfigured {
		h.presenter.WriteError(w, domainerror.NewServerMisconfigured().WithReqID(reqID))
		return
	}
	if target == "" {
		target = entity.DefaultTarget
	}

	content, err := h.chat.Complete(r.Context(), h.prompts.Translation(text, target), false)
	if err != nil {
		h.presenter.WriteError(w, domainerror.AsProxyError(err).WithReqID(reqID))
		return
	}

	translation := strings.TrimSpace(content)
	if translation == "" {
		h.presenter.WriteError(w, domainerror.NewNoTranslation(content).WithReqID(reqID))
		return
	}

	log.Info("translated", port.String("target", target), port.Int("chars", len(text)))
	h.writeJSON(w, map[string]any{"translation": translation})
}

func (h *ProxyHandler) handleAnalyze(w http.ResponseWriter, r *http.Request, log port.Logger, reqID, text string) {
	if !h.config.Get().ChatConfigured {
		h.presenter.WriteError(w, domainerror.NewServerMisconfigured().WithReqID(reqID))
		return
	}

	var messages []entity.PromptMessage
	if classify.Classify(text) == classify.Word {
		messages = h.prompts.WordAnalysis(text)
	} else {
		messages = h.prompts.SentenceAnalysis(text)
	}

	content, err := h.chat.Complete(r.Context(), messages, true)
	if err != nil {
		h.presenter.WriteError(w, domainerror.AsProxyError(err).WithReqID(reqID))
		return
	}

	parsed, err := modelout.Parse(content)
	if err != nil {
		raw := content
		var pf *modelout.ParseFailure
		if errors.As(err, &pf) {
			raw = pf.Raw
		}
		h.presenter.WriteError(w, domainerror.NewInvalidAnalysis(raw).WithReqID(reqID))
		return
	}

	log.Info("analyzed", port.Int("chars", len(text)))
	h.writeJSON(w, map[string]any{"analysis": modelout.Normalize(parsed, analysisArrayFields...)})
}

func (h *ProxyHandler) handleSynthesize(w http.ResponseWriter, r *http.Request, log port.Logger, reqID, text, voice string) {
	cfg := h.config.Get()
	if voice == "" {
		voice = cfg.DefaultVoice
	}
	if !cfg.SpeechConfigured || voice == "" {
		h.presenter.WriteError(w, domainerror.NewTTSNotConfigured().WithReqID(reqID))
		return
	}

	result, err := h.speech.Synthesize(r.Context(), text, voice)
	if err != nil {
		h.presenter.WriteError(w, domainerror.AsProxyError(err).WithReqID(reqID))
		return
	}

	log.Info("synthesized", port.String("voice", voice), port.Int("bytes", len(result.Audio)))
	h.writeJSON(w, map[string]any{
		"audio": base64.StdEncoding.EncodeToString(result.Audio),
		"mime":  result.Mime,
	})
}

func (h *ProxyHandler) writeJSON(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", port.Error(err))
	}
}

func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-proxy-token")
}

func generateRequestID() string {
	return "req_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:18]
}
