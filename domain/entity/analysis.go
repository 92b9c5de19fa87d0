package entity

// Analysis shape tags emitted by the provider prompts.
const (
	AnalysisTypeWord     = "word"
	AnalysisTypeSentence = "sentence"
)

// AnalysisResult is implemented by the two analysis shapes. The server picks
// the shape from the input, not from the client request.
type AnalysisResult interface {
	AnalysisType() string
}

// WordAnalysis is the analysis shape for a single-word input.
type WordAnalysis struct {
	Word       string   `json:"word"`
	Definition string   `json:"definition"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
	Examples   []string `json:"examples"`
}

// AnalysisType implements AnalysisResult.
func (WordAnalysis) AnalysisType() string { return AnalysisTypeWord }

// WordRole is one word's role within a sentence analysis.
type WordRole struct {
	Word        string `json:"word"`
	Index       int    `json:"index"`
	Role        string `json:"role"`
	Explanation string `json:"explanation"`
}

// SentenceAnalysis is the analysis shape for a multi-word input.
type SentenceAnalysis struct {
	Sentence string     `json:"sentence"`
	Words    []WordRole `json:"words"`
	Meaning  string     `json:"meaning"`
	Examples []string   `json:"examples"`
}

// AnalysisType implements AnalysisResult.
func (SentenceAnalysis) AnalysisType() string { return AnalysisTypeSentence }

// DecodeAnalysis builds the typed view of a recovered analysis object.
// Returns nil when the shape tag is missing or unknown; callers still have
// the raw map in that case.
func DecodeAnalysis(data map[string]any) AnalysisResult {
	switch getString(data, "type") {
	case AnalysisTypeWord:
		return WordAnalysis{
			Word:       getString(data, "word"),
			Definition: getString(data, "definition"),
			Synonyms:   getStrings(data, "synonyms"),
			Antonyms:   getStrings(data, "antonyms"),
			Examples:   getStrings(data, "examples"),
		}
	case AnalysisTypeSentence:
		return SentenceAnalysis{
			Sentence: getString(data, "sentence"),
			Words:    getWordRoles(data, "words"),
			Meaning:  getString(data, "meaning"),
			Examples: getStrings(data, "examples"),
		}
	}
	return nil
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getStrings(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getWordRoles(m map[string]any, key string) []WordRole {
	raw, ok := m[key].([]any)
	if !ok {
		return []WordRole{}
	}
	out := make([]WordRole, 0, len(raw))
	for _, v := range raw {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		role := WordRole{
			Word:        getString(entry, "word"),
			Role:        getString(entry, "role"),
			Explanation: getString(entry, "explanation"),
		}
		if idx, ok := entry["index"].(float64); ok {
			role.Index = int(idx)
		}
		out = append(out, role)
	}
	return out
}
