package entity

// Translation is a successful translate result.
type Translation struct {
	Text   string
	Cached bool // served from the local cache, no network call made
}

// Audio is a successful speech synthesis result. The payload is kept
// base64-encoded end to end; decoding is the player's concern.
type Audio struct {
	Base64 string
	Mime   string
}

// Analysis is a successful analyze result. Data holds the recovered provider
// object as-is; Result is the typed view when the shape tag is recognized.
type Analysis struct {
	Data   map[string]any
	Result AnalysisResult
}

// Failure is the normalized error variant of a ProxyResponse.
type Failure struct {
	Code   string
	Detail string
	Status int    // upstream HTTP status, proxy_error only
	Raw    string // raw provider payload, parse failures only
}

// ProxyResponse is the tagged result of a dispatch. Exactly one variant is
// populated.
type ProxyResponse struct {
	Translation *Translation
	Analysis    *Analysis
	Audio       *Audio
	Failure     *Failure
}

// NewTranslationResponse returns a response carrying a translation.
func NewTranslationResponse(text string, cached bool) ProxyResponse {
	return ProxyResponse{Translation: &Translation{Text: text, Cached: cached}}
}

// NewAnalysisResponse returns a response carrying an analysis.
func NewAnalysisResponse(data map[string]any) ProxyResponse {
	return ProxyResponse{Analysis: &Analysis{Data: data, Result: DecodeAnalysis(data)}}
}

// NewAudioResponse returns a response carrying synthesized audio.
func NewAudioResponse(b64, mime string) ProxyResponse {
	return ProxyResponse{Audio: &Audio{Base64: b64, Mime: mime}}
}

// NewFailureResponse returns a response carrying a normalized failure.
func NewFailureResponse(f Failure) ProxyResponse {
	return ProxyResponse{Failure: &f}
}

// IsFailure reports whether the response is the failure variant.
func (r ProxyResponse) IsFailure() bool {
	return r.Failure != nil
}
