package view

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PageComponent renders the full document for a Page model.
func PageComponent(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePage(&b, page)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// LikeControlComponent renders the standalone like fragment swapped into a
// card after activation.
func LikeControlComponent(lc LikeControl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeLikeControl(&b, lc)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writePage(b *strings.Builder, page Page) {
	bodyClass := ""
	if page.Dark {
		bodyClass = "dark"
	}

	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(b, "<html lang=%q>\n<head>\n", attr(page.Lang))
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(b, "<title>%s</title>\n", esc(page.Title))
	b.WriteString("<link rel=\"stylesheet\" href=\"/public/static/carta.css\">\n")
	b.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\" defer></script>\n")
	b.WriteString("<script src=\"/public/static/carta.js\" defer></script>\n")
	b.WriteString("</head>\n")

	fmt.Fprintf(b, "<body class=%q data-root-margin=%q%s>\n", attr(bodyClass), attr(page.RootMargin), styleAttr(page.PaletteVars))

	writeHeader(b, page)
	writePillbar(b, page.Pills)

	b.WriteString("<main id=\"main\">\n")
	if page.Unavailable {
		fmt.Fprintf(b, "<section class=\"notice\" id=\"unavailable\"><p>%s</p></section>\n", esc(page.Labels.Unavailable))
	} else {
		if page.Popular != nil {
			writeSection(b, *page.Popular, true, page.Labels)
		}
		for _, section := range page.Sections {
			writeSection(b, section, false, page.Labels)
		}
	}
	b.WriteString("</main>\n")

	fmt.Fprintf(b, "<button id=\"backTop\" type=\"button\" aria-label=%q>↑</button>\n", attr(page.Labels.BackToTop))
	fmt.Fprintf(b, "<template id=\"shareCopied\">%s</template>\n", esc(page.Labels.ShareCopied))
	b.WriteString("</body>\n</html>\n")
}

func writeHeader(b *strings.Builder, page Page) {
	b.WriteString("<header class=\"brand\">\n")
	if page.Brand.LogoURL != "" {
		fmt.Fprintf(b, "<div id=\"logo\"><img src=%q alt=\"Logo\" width=\"64\" height=\"64\"></div>\n", attr(page.Brand.LogoURL))
	} else {
		fmt.Fprintf(b, "<div id=\"logo\" class=\"initials\">%s</div>\n", esc(page.Brand.Initials))
	}
	fmt.Fprintf(b, "<div class=\"brand-text\"><h1 id=\"brandTitle\">%s</h1><p id=\"brandSubtitle\">%s</p></div>\n",
		esc(page.Brand.Name), esc(page.Brand.Tagline))

	b.WriteString("<div class=\"controls\">\n")
	fmt.Fprintf(b, "<form method=\"post\" action=\"/prefs/language\"><button id=\"langToggle\" type=\"submit\">%s</button></form>\n",
		esc(page.Labels.LanguageToggle))
	fmt.Fprintf(b, "<form method=\"post\" action=\"/prefs/theme\"><button id=\"themeToggle\" type=\"submit\">%s</button></form>\n",
		esc(page.Labels.ThemeToggle))
	b.WriteString("</div>\n</header>\n")
}

func writePillbar(b *strings.Builder, pills []Pill) {
	b.WriteString("<nav id=\"pillbar\">\n")
	for _, pill := range pills {
		class := ""
		if pill.Active {
			class = " class=\"active\""
		}
		fmt.Fprintf(b, "<a href=\"#%s\"%s>%s %s</a>\n", attr(pill.SectionID), class, esc(pill.Emoji), esc(pill.Label))
	}
	b.WriteString("</nav>\n")
}

func writeSection(b *strings.Builder, section Section, popular bool, labels Labels) {
	class := "menu-section"
	if popular {
		class = "menu-section popular"
	}
	fmt.Fprintf(b, "<section class=%q id=%q>\n", class, attr(section.ID))
	fmt.Fprintf(b, "<div class=\"section-head\"><h2>%s %s</h2><span class=\"hint\">%s</span></div>\n",
		esc(section.Emoji), esc(section.Title), esc(section.Hint))
	b.WriteString("<div class=\"grid\">\n")
	for _, card := range section.Cards {
		writeCard(b, card, labels)
	}
	b.WriteString("</div>\n</section>\n")
}

func writeCard(b *strings.Builder, card Card, labels Labels) {
	fmt.Fprintf(b, "<article class=\"card\" data-item-id=%q>\n", attr(card.ItemID))
	b.WriteString("<div class=\"media\">\n")
	if card.ImageURL != "" {
		fmt.Fprintf(b, "<img loading=\"lazy\" src=%q alt=%q>\n", attr(card.ImageURL), attr(card.Title))
	}
	fmt.Fprintf(b, "<div class=\"price-badge\">%s</div>\n", esc(card.Price))
	b.WriteString("</div>\n<div class=\"content\">\n")
	fmt.Fprintf(b, "<h3 class=\"title\">%s</h3>\n", esc(card.Title))
	// DescriptionHTML is already sanitised markdown output
	fmt.Fprintf(b, "<div class=\"desc\">%s</div>\n", card.DescriptionHTML)
	b.WriteString("<div class=\"meta\">\n")
	fmt.Fprintf(b, "<span class=\"tag\">%s</span>\n", esc(card.CategoryLabel))
	b.WriteString("<div class=\"actions\">\n")
	writeLikeControl(b, LikeControl{ItemID: card.ItemID, Count: card.LikeCount, Label: labels.LikeLabel})
	fmt.Fprintf(b, "<button class=\"share-btn\" type=\"button\" data-share-text=%q%s>📤</button>\n", attr(card.ShareText), labelAttr(labels.ShareLabel))
	b.WriteString("</div>\n</div>\n</div>\n</article>\n")
}

// The control targets itself via "closest" so an item shown twice (popular
// section plus its category) swaps only the activated instance.
func writeLikeControl(b *strings.Builder, lc LikeControl) {
	fmt.Fprintf(b, "<div class=\"like-control\" data-item-id=%q>", attr(lc.ItemID))
	fmt.Fprintf(b, "<button class=\"like-btn\" type=\"button\" hx-post=\"/menu/items/%s/like\" hx-target=\"closest .like-control\" hx-swap=\"outerHTML\"%s>❤️</button>",
		attr(lc.ItemID), labelAttr(lc.Label))
	fmt.Fprintf(b, "<span class=\"like-count\">%d</span>", lc.Count)
	b.WriteString("</div>\n")
}

func labelAttr(label string) string {
	if label == "" {
		return ""
	}
	return fmt.Sprintf(" aria-label=%q", attr(label))
}

func styleAttr(vars []CSSVar) string {
	if len(vars) == 0 {
		return ""
	}
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		parts = append(parts, v.Name+":"+v.Value)
	}
	return fmt.Sprintf(" style=%q", attr(strings.Join(parts, ";")))
}

func esc(s string) string { return html.EscapeString(s) }

// attr escapes a value destined for a double-quoted attribute.
func attr(s string) string { return html.EscapeString(s) }
