package entity

import "testing"

func TestDecodeWordAnalysis(t *testing.T) {
	data := map[string]any{
		"type":       "word",
		"word":       "serendipity",
		"definition": "finding good things by chance",
		"synonyms":   []any{"luck", "fortuity"},
		"examples":   []any{"a serendipity of timing"},
	}

	result := DecodeAnalysis(data)
	word, ok := result.(WordAnalysis)
	if !ok {
		t.Fatalf("result = %T, want WordAnalysis", result)
	}
	if word.Word != "serendipity" || len(word.Synonyms) != 2 {
		t.Errorf("word = %+v", word)
	}
	if word.Antonyms == nil {
		t.Error("missing arrays should decode to empty, not nil")
	}
	if word.AnalysisType() != AnalysisTypeWord {
		t.Errorf("type = %s", word.AnalysisType())
	}
}

func TestDecodeSentenceAnalysis(t *testing.T) {
	data := map[string]any{
		"type":     "sentence",
		"sentence": "The cat sat.",
		"meaning":  "a cat took a seat",
		"words": []any{
			map[string]any{"word": "The", "index": float64(0), "role": "article", "explanation": "definite article"},
			map[string]any{"word": "cat", "index": float64(1), "role": "subject", "explanation": "noun"},
		},
	}

	result := DecodeAnalysis(data)
	sentence, ok := result.(SentenceAnalysis)
	if !ok {
		t.Fatalf("result = %T, want SentenceAnalysis", result)
	}
	if len(sentence.Words) != 2 || sentence.Words[1].Index != 1 || sentence.Words[1].Role != "subject" {
		t.Errorf("words = %+v", sentence.Words)
	}
}

func TestDecodeUnknownShape(t *testing.T) {
	if got := DecodeAnalysis(map[string]any{"foo": "bar"}); got != nil {
		t.Errorf("result = %v, want nil for an untagged object", got)
	}
	if got := DecodeAnalysis(map[string]any{"type": "paragraph"}); got != nil {
		t.Errorf("result = %v, want nil for an unknown tag", got)
	}
}

func TestRequestHelpers(t *testing.T) {
	r := Request{Kind: KindTranslate, Text: "  ciao  "}
	if r.TrimmedText() != "ciao" {
		t.Errorf("trimmed = %q", r.TrimmedText())
	}
	if r.TargetOrDefault() != DefaultTarget {
		t.Errorf("target = %q", r.TargetOrDefault())
	}
	if !KindAnalyze.IsValid() || Kind("NOPE").IsValid() {
		t.Error("kind validity")
	}
}
