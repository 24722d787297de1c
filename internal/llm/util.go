// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock strips everything around the JSON payload of an LLM response:
// markdown code fences, conversational preamble, and trailing chatter. LLMs
// often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks, skipping a language identifier line
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// No fences: if the payload is surrounded by prose, cut out the first
	// balanced JSON object or array.
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		if obj := ExtractJSONObject(text); obj != "" {
			return obj
		}
		if arr := ExtractJSONArray(text); arr != "" {
			return arr
		}
	}
	// Trailing chatter after a leading JSON value
	if strings.HasPrefix(text, "{") {
		if obj := ExtractJSONObject(text); obj != "" {
			return obj
		}
	}
	if strings.HasPrefix(text, "[") {
		if arr := ExtractJSONArray(text); arr != "" {
			return arr
		}
	}

	return text
}

// ExtractJSONObject returns the first balanced {...} object in text, or ""
// if none is found. String literals and escapes are respected.
func ExtractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// ExtractJSONArray returns the first balanced [...] array in text, or ""
// if none is found.
func ExtractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, openCh, closeCh byte) string {
	start := strings.IndexByte(text, openCh)
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
