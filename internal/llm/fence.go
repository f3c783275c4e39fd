package llm

import "strings"

// StripJSONFence unwraps a markdown code fence from a JSON response. Models
// often answer with ```json ... ``` even when told to return bare JSON, so
// every provider passes GenerateJSON output through here before returning
// it.
func StripJSONFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")

	// Any other language tag sits alone on the fence line.
	if nl := strings.Index(body, "\n"); nl >= 0 {
		if tag := strings.TrimSpace(body[:nl]); tag != "" && len(tag) < 20 && !strings.ContainsAny(tag, " {") {
			body = body[nl+1:]
		}
	}

	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
