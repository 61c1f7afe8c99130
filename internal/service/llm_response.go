package service

import "strings"

// cleanLLMResponse strips markdown code fences that providers sometimes wrap
// around JSON output even when JSON mode is requested.
func cleanLLMResponse(response string) string {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
