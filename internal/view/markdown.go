package view

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var descriptionHTMLPolicy = newDescriptionHTMLPolicy()

// DescriptionRenderer turns item description markdown into sanitised HTML.
// Descriptions come from the menu document, which is operator-edited content,
// so the output always passes through the sanitiser.
type DescriptionRenderer struct {
	md goldmark.Markdown
}

// NewDescriptionRenderer constructs the shared markdown pipeline.
func NewDescriptionRenderer() *DescriptionRenderer {
	return &DescriptionRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render converts desc to sanitised HTML. An empty description renders as an
// empty string, not an empty paragraph.
func (r *DescriptionRenderer) Render(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(desc), &buf); err != nil {
		// markdown that fails to convert is shown as-is, escaped by the policy
		return descriptionHTMLPolicy.Sanitize(desc)
	}
	return strings.TrimSpace(descriptionHTMLPolicy.Sanitize(buf.String()))
}

func newDescriptionHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return policy
}
