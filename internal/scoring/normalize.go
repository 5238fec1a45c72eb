package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"

	"shillscore/internal/model"
)

// Text projects a raw post to its canonical body. The content provider wraps
// the same logical field in three shapes, tried in priority order: a plain
// string body, a nested object with its own "content" field, then a key/value
// property list. Unknown shapes yield the empty string; Text never fails.
func Text(p model.Post) string {
	if len(p.Content) > 0 {
		var s string
		if err := json.Unmarshal(p.Content, &s); err == nil {
			return s
		}
		var nested struct {
			Content any `json:"content"`
		}
		if err := json.Unmarshal(p.Content, &nested); err == nil && nested.Content != nil {
			return coerceString(nested.Content)
		}
	}
	for _, pr := range p.Properties {
		if pr.Key == "content" {
			return coerceString(pr.Value)
		}
	}
	return ""
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
