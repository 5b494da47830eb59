package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractFirstJSONObject finds the first balanced JSON object inside a block
// of free text and unmarshals it into target. AI replies often wrap the JSON
// in prose or markdown fences, so plain json.Unmarshal is not enough.
func ExtractFirstJSONObject(text string, target interface{}) error {
	start := strings.Index(text, "{")
	if start == -1 {
		return fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return json.Unmarshal([]byte(text[start:i+1]), target)
				}
			}
		}
	}
	return fmt.Errorf("unbalanced JSON object in response")
}

// StripEmphasis removes markdown emphasis markup from AI-generated text
// before it is returned to the caller.
func StripEmphasis(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeft(line, "#")
		if trimmed != line {
			trimmed = strings.TrimLeft(trimmed, " ")
		}
		b.WriteString(trimmed)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
