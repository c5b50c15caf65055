package service

import (
	"regexp"

	"github.com/s21platform/messenger-service/internal/model"
)

var urlPattern = regexp.MustCompile(`https?://[^\s/$.?#].[^\s]*`)

// ExtractURLs finds every http(s) URL in the message body along with its
// byte offsets, so previews render against the original text.
func ExtractURLs(content string) []model.URLSpan {
	matches := urlPattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	spans := make([]model.URLSpan, 0, len(matches))
	for _, match := range matches {
		spans = append(spans, model.URLSpan{
			URL:        content[match[0]:match[1]],
			StartIndex: match[0],
			EndIndex:   match[1],
		})
	}
	return spans
}
