package render

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

var (
	headingRe = regexp.MustCompile(`</?h[1-6]>`)
	tagRe     = regexp.MustCompile(`</?([a-zA-Z0-9]+)[^>]*>`)
)

// Telegram accepts only a small subset of HTML in messages.
var allowedTags = map[string]bool{
	"b": true, "strong": true,
	"i": true, "em": true,
	"u": true, "s": true, "strike": true,
	"code": true, "pre": true,
	"a": true,
}

// ToHTML converts a model reply written in markdown into HTML that Telegram
// accepts, stripping everything outside its supported tag set.
func ToHTML(markdown string) string {
	html := string(blackfriday.MarkdownCommon([]byte(markdown)))

	html = headingRe.ReplaceAllStringFunc(html, func(tag string) string {
		if strings.HasPrefix(tag, "</") {
			return "</b>"
		}
		return "<b>"
	})

	html = strings.ReplaceAll(html, "<li>", "• ")
	html = strings.ReplaceAll(html, "<br>", "\n")
	html = strings.ReplaceAll(html, "<br/>", "\n")
	html = strings.ReplaceAll(html, "<br />", "\n")

	html = tagRe.ReplaceAllStringFunc(html, func(tag string) string {
		name := strings.ToLower(tagRe.FindStringSubmatch(tag)[1])
		if allowedTags[name] {
			return tag
		}
		return ""
	})

	return strings.TrimSpace(html)
}
