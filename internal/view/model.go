// Package view projects a loaded menu document into a render-ready page
// model and emits it as HTML. Building the model is a pure function of the
// document, the counters and the visitor preferences; emission is a separate
// concern so the projection can be tested without a live page.
package view

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/format"
	"github.com/cartasycatalogos/cartamuestraBR/internal/i18n"
	"github.com/cartasycatalogos/cartamuestraBR/internal/identity"
	"github.com/cartasycatalogos/cartamuestraBR/internal/scrollsync"
	"github.com/cartasycatalogos/cartamuestraBR/internal/services"
)

// PopularSectionID anchors the derived popular section; it is not a category
// and never appears in the pill bar.
const PopularSectionID = "popular"

const defaultInitial = "R"

// CSSVar is one palette role rendered as a CSS custom property.
type CSSVar struct {
	Name  string
	Value string
}

// Brand is the header block. Initials are shown only when no logo is set.
type Brand struct {
	Name     string
	Tagline  string
	LogoURL  string
	Initials string
}

// Pill is one navigation entry, in category document order.
type Pill struct {
	SectionID string
	Emoji     string
	Label     string
	Active    bool
}

// Card is one rendered menu item.
type Card struct {
	ItemID          string
	Title           string
	DescriptionHTML string
	Price           string
	ImageURL        string
	CategoryLabel   string
	LikeCount       int64
	ShareText       string
}

// Section is one block of cards under a heading.
type Section struct {
	ID    string
	Emoji string
	Title string
	Hint  string
	Cards []Card
}

// Labels carries every localised chrome string the page needs.
type Labels struct {
	PopularTitle   string
	SectionHint    string
	LikeLabel      string
	ShareLabel     string
	ShareCopied    string
	LanguageToggle string
	ThemeToggle    string
	BackToTop      string
	Unavailable    string
}

// LikeControl is the standalone fragment swapped into a card after a like.
type LikeControl struct {
	ItemID string
	Count  int64
	Label  string
}

// Page is the complete view model for one render. It is rebuilt from scratch
// on every request; nothing on it survives between renders.
type Page struct {
	Lang        string
	Dark        bool
	Title       string
	PaletteVars []CSSVar
	Brand       Brand
	Pills       []Pill
	Popular     *Section
	Sections    []Section
	Labels      Labels
	RootMargin  string
	Unavailable bool
}

// BuilderDeps bundles what a Builder needs to project documents.
type BuilderDeps struct {
	Bundle      *i18n.Bundle
	Currency    string
	PopularSize int
	Band        scrollsync.Band
}

// Builder projects documents into Page models.
type Builder struct {
	bundle      *i18n.Bundle
	currency    string
	popularSize int
	band        scrollsync.Band
	desc        *DescriptionRenderer
}

// NewBuilder constructs a Builder.
func NewBuilder(deps BuilderDeps) (*Builder, error) {
	if deps.Bundle == nil {
		return nil, errors.New("view builder: i18n bundle is required")
	}
	currency := strings.TrimSpace(deps.Currency)
	if currency == "" {
		currency = "ARS"
	}
	size := deps.PopularSize
	if size <= 0 {
		size = services.DefaultPopularSize
	}
	band := deps.Band
	if band == (scrollsync.Band{}) {
		band = scrollsync.DefaultBand
	}
	return &Builder{
		bundle:      deps.Bundle,
		currency:    currency,
		popularSize: size,
		band:        band,
		desc:        NewDescriptionRenderer(),
	}, nil
}

// Page builds the full view model for one document render.
func (b *Builder) Page(doc domain.Document, counts map[string]int64, prefs domain.Preferences) Page {
	lang := prefs.Language
	labels := b.labels(lang)

	page := Page{
		Lang:        lang,
		Dark:        prefs.Dark,
		Title:       brandName(doc.Restaurant, b.bundle, lang),
		PaletteVars: paletteVars(doc.Restaurant.Palette),
		Brand:       b.brand(doc.Restaurant, lang),
		Labels:      labels,
		RootMargin:  b.band.RootMargin(),
	}

	for _, cat := range doc.Categories {
		page.Pills = append(page.Pills, Pill{SectionID: cat.ID, Emoji: cat.Emoji, Label: cat.Label})
	}
	if len(page.Pills) > 0 {
		page.Pills[0].Active = true
	}

	if popular := services.PopularItems(doc, counts, b.popularSize); len(popular) > 0 {
		section := Section{ID: PopularSectionID, Emoji: "⭐", Title: labels.PopularTitle, Hint: labels.SectionHint}
		for _, p := range popular {
			section.Cards = append(section.Cards, b.card(p.Item, categoryLabel(doc, p.Item.CategoryID), p.Count, lang))
		}
		page.Popular = &section
	}

	for _, cat := range doc.Categories {
		section := Section{ID: cat.ID, Emoji: cat.Emoji, Title: cat.Label, Hint: labels.SectionHint}
		for _, item := range doc.ItemsFor(cat.ID) {
			section.Cards = append(section.Cards, b.card(item, cat.Label, counts[identity.Resolve(item.Title)], lang))
		}
		page.Sections = append(page.Sections, section)
	}
	return page
}

// Unavailable builds the degraded page shown when the document cannot be
// loaded: header controls stay usable, the main region carries the notice.
func (b *Builder) Unavailable(prefs domain.Preferences) Page {
	lang := prefs.Language
	labels := b.labels(lang)
	return Page{
		Lang:        lang,
		Dark:        prefs.Dark,
		Title:       b.bundle.T(lang, "brand.fallback_name"),
		Brand:       b.brand(domain.Restaurant{}, lang),
		Labels:      labels,
		RootMargin:  b.band.RootMargin(),
		Unavailable: true,
	}
}

// LikeControl builds the fragment model for one card's counter.
func (b *Builder) LikeControl(itemID string, count int64, lang string) LikeControl {
	return LikeControl{ItemID: itemID, Count: count, Label: b.bundle.T(lang, "like.label")}
}

func (b *Builder) labels(lang string) Labels {
	t := func(key string) string { return b.bundle.T(lang, key) }
	return Labels{
		PopularTitle:   t("popular.title"),
		SectionHint:    t("section.hint"),
		LikeLabel:      t("like.label"),
		ShareLabel:     t("share.label"),
		ShareCopied:    t("share.copied"),
		LanguageToggle: t("toggle.language"),
		ThemeToggle:    t("toggle.theme"),
		BackToTop:      t("backtotop.label"),
		Unavailable:    t("error.menu_unavailable"),
	}
}

func (b *Builder) brand(r domain.Restaurant, lang string) Brand {
	name := brandName(r, b.bundle, lang)
	tagline := strings.TrimSpace(r.Tagline)
	if tagline == "" {
		tagline = b.bundle.T(lang, "brand.fallback_tagline")
	}
	brand := Brand{Name: name, Tagline: tagline, LogoURL: strings.TrimSpace(r.LogoURL)}
	if brand.LogoURL == "" {
		brand.Initials = initials(strings.TrimSpace(r.Name))
	}
	return brand
}

func (b *Builder) card(item domain.MenuItem, categoryLabel string, count int64, lang string) Card {
	price := format.Price(item.Price, b.currency, lang)
	return Card{
		ItemID:          identity.Resolve(item.Title),
		Title:           item.Title,
		DescriptionHTML: b.desc.Render(item.Description),
		Price:           price,
		ImageURL:        item.ImageURL,
		CategoryLabel:   categoryLabel,
		LikeCount:       count,
		ShareText:       shareText(item.Title, price, item.Description),
	}
}

func brandName(r domain.Restaurant, bundle *i18n.Bundle, lang string) string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return bundle.T(lang, "brand.fallback_name")
}

func categoryLabel(doc domain.Document, categoryID string) string {
	for _, cat := range doc.Categories {
		if cat.ID == categoryID {
			return cat.Label
		}
	}
	return ""
}

// initials takes the first letter of up to the first two words, uppercased.
func initials(name string) string {
	if name == "" {
		return defaultInitial
	}
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	if b.Len() == 0 {
		return defaultInitial
	}
	return b.String()
}

// shareText composes the copied/shared blurb; the page URL is appended at the
// point of sharing, where it is known.
func shareText(title, price, description string) string {
	parts := []string{title, price}
	if d := strings.TrimSpace(description); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " · ")
}

func paletteVars(p domain.Palette) []CSSVar {
	roles := p.Roles()
	out := make([]CSSVar, 0, len(roles))
	for _, role := range roles {
		out = append(out, CSSVar{Name: "--" + role[0], Value: role[1]})
	}
	return out
}
