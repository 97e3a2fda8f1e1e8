// Package extract recovers a usable strength list from whatever shape a
// completion actually returned. Strategies run in a fixed order; the first
// one that yields at least MinItems cleaned strings wins and its result is
// truncated to MaxItems. Nothing here ever returns an error: when every
// strategy comes up short, the stage's canned fallback list is used.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"boardpanel/internal/models"
)

const (
	MinItems = 3
	MaxItems = 5
	// MinStrengthLen is the quality floor: anything shorter than this is not
	// a complete sentence and is dropped during cleaning.
	MinStrengthLen = 15
)

// payloadCarrier is implemented by completion results that wrap an already
// parsed payload (see llm.StageResult).
type payloadCarrier interface {
	Payload() any
}

// textCarrier exposes the raw completion text of a result.
type textCarrier interface {
	Text() string
}

var (
	// A brace-delimited object containing a "strengths" array, not spanning
	// nested braces.
	embeddedJSONRe = regexp.MustCompile(`(?s)\{[^{}]*?"strengths"[^{}]*?\[[^\]]*?\][^{}]*?\}`)
	// The bracketed body of a "strengths" array.
	strengthsArrayRe = regexp.MustCompile(`(?s)"strengths"\s*:\s*\[(.*?)\]`)
	// Double-quoted runs long enough to be complete sentences.
	quotedRunRe = regexp.MustCompile(`"([^"]{15,})"`)
)

// Schema for the structure the stages are instructed to return; used by the
// strict-schema strategy.
var strengthSchema = jsonschema.MustCompileString("agent_strength_output.json", `{
	"type": "object",
	"required": ["agent_name", "strengths"],
	"properties": {
		"agent_name": {"type": "string"},
		"strengths": {
			"type": "array",
			"minItems": 3,
			"maxItems": 5,
			"items": {"type": "string"}
		}
	}
}`)

// Strengths extracts a 3-5 item strength list for the given stage from a raw
// completion result. It never fails; the stage's fallback list is the last
// resort.
func Strengths(raw any, stage int) []string {
	text := renderText(raw)

	strategies := []func() []string{
		func() []string { return typedObject(raw) },
		func() []string { return nestedPayload(raw) },
		func() []string { return genericMapping(raw) },
		func() []string { return embeddedJSON(text) },
		func() []string { return strictSchema(text) },
		func() []string { return quotedRuns(text) },
	}

	for _, strategy := range strategies {
		items := clean(strategy())
		if len(items) >= MinItems {
			if len(items) > MaxItems {
				items = items[:MaxItems]
			}
			return items
		}
	}

	return Fallback(stage)
}

// typedObject handles a result that already is the expected structure.
func typedObject(raw any) []string {
	switch v := raw.(type) {
	case models.AgentStrengthOutput:
		return v.Strengths
	case *models.AgentStrengthOutput:
		if v != nil {
			return v.Strengths
		}
	}
	return nil
}

// nestedPayload handles a result that wraps an already-parsed payload: the
// typed structure itself, or a generic mapping holding a "strengths" key.
func nestedPayload(raw any) []string {
	pc, ok := raw.(payloadCarrier)
	if !ok {
		return nil
	}
	payload := pc.Payload()
	if payload == nil {
		return nil
	}
	if items := typedObject(payload); items != nil {
		return items
	}
	if m, ok := payload.(map[string]any); ok {
		return stringList(m["strengths"])
	}
	return nil
}

// genericMapping handles a bare key-value mapping, either with a top-level
// "strengths" key or with one nested under a payload-like key.
func genericMapping(raw any) []string {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	if items := stringList(m["strengths"]); items != nil {
		return items
	}
	for _, key := range []string{"payload", "output", "data"} {
		if nested, ok := m[key].(map[string]any); ok {
			if items := stringList(nested["strengths"]); items != nil {
				return items
			}
		}
	}
	return nil
}

// embeddedJSON finds a strengths-bearing JSON object buried in surrounding
// text and parses just that object.
func embeddedJSON(text string) []string {
	match := embeddedJSONRe.FindString(text)
	if match == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(match), &m); err != nil {
		return nil
	}
	return stringList(m["strengths"])
}

// strictSchema validates the full text against the expected output schema
// and, on success, decodes it as the typed structure.
func strictSchema(text string) []string {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil
	}
	if err := strengthSchema.Validate(v); err != nil {
		return nil
	}
	var out models.AgentStrengthOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil
	}
	return out.Strengths
}

// quotedRuns is the last-ditch textual strategy: take the body of the
// "strengths" array and collect quoted runs long enough to be sentences.
func quotedRuns(text string) []string {
	arr := strengthsArrayRe.FindStringSubmatch(text)
	if arr == nil {
		return nil
	}
	matches := quotedRunRe.FindAllStringSubmatch(arr[1], -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, m[1])
	}
	if len(items) < MinItems {
		return nil
	}
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return items
}

func renderText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case textCarrier:
		return v.Text()
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// stringList coerces a decoded JSON value into a string slice.
func stringList(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// clean drops blank and too-short entries so a strategy cannot win with
// filler items.
func clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if len(item) < MinStrengthLen {
			continue
		}
		out = append(out, item)
	}
	return out
}
