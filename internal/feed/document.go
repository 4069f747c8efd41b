// Package feed supplies ordered agent lists to the ecosystem view, from a file
// on disk or from a live websocket stream.
package feed

import (
	"errors"
	"fmt"
	"time"

	"agent-ecosystem/internal/agent"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when a payload does not describe an agent list.
var ErrInvalidDocument = errors.New("invalid agents document")

// Document is the payload exchanged with the health poller.
type Document struct {
	Agents  []agent.Record `json:"agents" yaml:"agents"`
	Loading bool           `json:"loading" yaml:"loading"`
}

const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "loading": {"type": "boolean"},
    "agents": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "status": {"type": "string"},
          "balance": {"type": "number"},
          "daysAlive": {"type": "integer"},
          "chain": {"type": "string"},
          "keyOrigin": {"type": "string"},
          "url": {"type": "string"}
        }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("agents.schema.json", documentSchema)

// Decode parses a JSON or YAML agents document. A bare list of agents is
// accepted as shorthand for {"agents": [...]}. Records are returned in input
// order with malformed numeric fields clamped.
func Decode(data []byte) (Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if list, ok := raw.([]any); ok {
		raw = map[string]any{"agents": list}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	raw = jsonValue(raw)
	if err := schema.Validate(raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	normalized, err := yaml.Marshal(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	var doc Document
	if err := yaml.Unmarshal(normalized, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	seen := make(map[string]struct{}, len(doc.Agents))
	for _, r := range doc.Agents {
		if _, dup := seen[r.Name]; dup {
			return Document{}, fmt.Errorf("%w: duplicate agent name %q", ErrInvalidDocument, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	doc.Agents = agent.ClampAll(doc.Agents)
	return doc, nil
}

// jsonValue converts decoded YAML into the value types the schema validator
// understands: non-string keys and timestamps become strings.
func jsonValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = jsonValue(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = jsonValue(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = jsonValue(e)
		}
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case nil, bool, string, int, int64, uint64, float64:
		return t
	default:
		return fmt.Sprint(t)
	}
}
