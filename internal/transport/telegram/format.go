package telegram

import (
	"fmt"
	"html"
	"regexp"
)

// a body that is entirely one markdown-style link
var markdownLink = regexp.MustCompile(`(?s)^\[(.*)\]\((https?://[^\s)]+)\)$`)

// formatText renders title and body as Telegram HTML
func formatText(title, body string) string {
	return fmt.Sprintf("<b>%s</b>\n%s", html.EscapeString(title), formatBody(body))
}

func formatBody(body string) string {
	if m := markdownLink.FindStringSubmatch(body); m != nil {
		return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(m[2]), html.EscapeString(m[1]))
	}
	return html.EscapeString(body)
}
