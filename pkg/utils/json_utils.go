package utils

import "strings"

// CleanJSONResponse strips markdown code fences and any prose surrounding the
// first JSON object in a model completion. With a JSON response MIME type the
// text is normally already clean; this guards against the occasional fenced
// or prefixed reply.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return response
	}
	return response[start : end+1]
}

// findMatchingBrace returns the index of the brace closing the one at start,
// skipping over string literals, or -1 when unbalanced.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
