package services

import "github.com/sashabaranov/go-openai"

// ResponsesResponse is the subset of a responses-endpoint reply that the
// translator reads.
type ResponsesResponse struct {
	Output     []OutputItem `json:"output"`
	OutputText string       `json:"output_text"`
}

type OutputItem struct {
	Type    string          `json:"type"`
	Role    string          `json:"role"`
	Content []OutputContent `json:"content"`
}

type OutputContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ExtractOutputText pulls the generated text out of resp. It reads the first
// output_text part of the first assistant message and falls back to the
// top-level output_text field. It returns "" when neither holds text.
func ExtractOutputText(resp *ResponsesResponse) string {
	if resp == nil {
		return ""
	}
	if out := assistantOutputText(resp.Output); out != "" {
		return out
	}
	return resp.OutputText
}

func assistantOutputText(items []OutputItem) string {
	for _, item := range items {
		if item.Type != "message" || item.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		for _, c := range item.Content {
			if c.Type == "output_text" {
				return c.Text
			}
		}
		return ""
	}
	return ""
}
