// Package sanitize cleans user-supplied article HTML before it is stored.
//
// Markup is parsed with goquery and rebuilt against an allowlist. Executable
// elements are dropped together with their content, other unknown elements
// are unwrapped so their text survives, and only a handful of attributes are
// kept.
package sanitize

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// dropped elements lose their children as well.
const droppedSelector = "script, style, iframe, frame, frameset, object, embed, applet, form, input, button, select, textarea, link, meta, base, noscript, template, svg, math"

var allowedTags = map[string]bool{
	"p": true, "br": true, "hr": true, "span": true, "div": true,
	"b": true, "i": true, "em": true, "strong": true, "u": true, "s": true,
	"a": true, "img": true,
	"ul": true, "ol": true, "li": true,
	"blockquote": true, "code": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "th": true, "td": true,
}

// 要素ごとに許可する属性
var allowedAttrs = map[string]map[string]bool{
	"a":   {"href": true, "title": true},
	"img": {"src": true, "alt": true, "title": true},
}

var urlAttrs = map[string]bool{"href": true, "src": true}

// HTML sanitizes article markup. The zero value is ready to use.
type HTML struct{}

func NewHTML() *HTML { return &HTML{} }

// Sanitize returns the cleaned markup, trimmed of surrounding space.
// Input that cannot be parsed is returned as escaped text.
func (HTML) Sanitize(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + raw + "</body>"))
	if err != nil {
		slog.Warn("failed to parse article HTML, storing as text", slog.Any("error", err))
		return strings.TrimSpace(escapeText(raw))
	}

	body := doc.Find("body")
	body.Find(droppedSelector).Remove()

	body.Find("*").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)
		if !allowedTags[tag] {
			sel.ReplaceWithSelection(sel.Contents())
			return
		}
		cleanAttributes(sel, tag)
	})

	out, err := body.Html()
	if err != nil {
		slog.Warn("failed to render sanitized HTML", slog.Any("error", err))
		return strings.TrimSpace(escapeText(body.Text()))
	}
	return strings.TrimSpace(out)
}

func cleanAttributes(sel *goquery.Selection, tag string) {
	if len(sel.Nodes) == 0 {
		return
	}
	allowed := allowedAttrs[tag]

	var remove []string
	for _, attr := range sel.Nodes[0].Attr {
		key := strings.ToLower(attr.Key)
		switch {
		case !allowed[key]:
			remove = append(remove, attr.Key)
		case urlAttrs[key] && !safeURL(attr.Val):
			remove = append(remove, attr.Key)
		}
	}
	for _, key := range remove {
		sel.RemoveAttr(key)
	}
}

// safeURL accepts relative URLs and http, https and mailto links.
func safeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	default:
		return false
	}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;", "'", "&#39;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
