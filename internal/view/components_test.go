package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/i18n"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	bundle, err := i18n.Load("es", []string{"es", "en"})
	require.NoError(t, err)
	builder, err := NewBuilder(BuilderDeps{Bundle: bundle, Currency: "ARS"})
	require.NoError(t, err)
	return builder
}

func testDocument() domain.Document {
	return domain.Document{
		Restaurant: domain.Restaurant{
			Name:    "La Esquina",
			Tagline: "Cocina de barrio",
			Palette: domain.Palette{Brand: "#e63946", BG: "#1d3557"},
		},
		Categories: []domain.Category{
			{ID: "bebidas", Emoji: "🥤", Label: "Bebidas"},
			{ID: "platos", Emoji: "🍽️", Label: "Platos"},
		},
		Items: []domain.MenuItem{
			{Title: "Agua Mineral", Price: 500, ImageURL: "/img/agua.jpg", CategoryID: "bebidas"},
			{Title: "Milanesa", Description: "Con papas *fritas*", Price: 3200, CategoryID: "platos"},
		},
	}
}

func renderPage(t *testing.T, page Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, PageComponent(page).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestPageRendersPillPerCategoryInOrder(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	page := builder.Page(testDocument(), nil, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	pills := doc.Find("#pillbar a")
	require.Equal(t, 2, pills.Length())
	assert.Equal(t, "#bebidas", pills.Eq(0).AttrOr("href", ""))
	assert.Contains(t, pills.Eq(0).Text(), "Bebidas")
	assert.Equal(t, "#platos", pills.Eq(1).AttrOr("href", ""))
	assert.True(t, pills.Eq(0).HasClass("active"), "first pill starts active")
}

func TestPageCardShowsPriceAndZeroCount(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	page := builder.Page(testDocument(), nil, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	card := doc.Find("#bebidas .card").First()
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "Agua Mineral", card.Find(".title").Text())
	assert.Equal(t, "$ 500", card.Find(".price-badge").Text())
	assert.Equal(t, "0", card.Find(".like-count").Text())
	assert.Equal(t, "Bebidas", card.Find(".tag").Text())
}

func TestPageRendersPopularSectionFirstWhenLiked(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	counts := map[string]int64{"milanesa": 4}
	page := builder.Page(testDocument(), counts, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	sections := doc.Find("main section")
	require.Equal(t, 3, sections.Length())
	assert.Equal(t, "popular", sections.Eq(0).AttrOr("id", ""))
	assert.Equal(t, "bebidas", sections.Eq(1).AttrOr("id", ""))

	popularCard := sections.Eq(0).Find(".card")
	require.Equal(t, 1, popularCard.Length())
	assert.Equal(t, "Milanesa", popularCard.Find(".title").Text())
	assert.Equal(t, "4", popularCard.Find(".like-count").Text())
}

func TestPageOmitsPopularSectionWithoutLikes(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	page := builder.Page(testDocument(), nil, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	assert.Equal(t, 0, doc.Find("#popular").Length())
	assert.Equal(t, 2, doc.Find("main section").Length())
}

func TestPageAppliesPaletteAsCSSVars(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	page := builder.Page(testDocument(), nil, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	style := doc.Find("body").AttrOr("style", "")
	assert.Contains(t, style, "--brand:#e63946")
	assert.Contains(t, style, "--bg:#1d3557")
	assert.NotContains(t, style, "--accent", "unset roles stay out of the style attribute")
}

func TestPageBrandInitialsWhenNoLogo(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	page := builder.Page(testDocument(), nil, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	assert.Equal(t, "LE", doc.Find("#logo").Text())
	assert.Equal(t, 0, doc.Find("#logo img").Length())
}

func TestPageBrandLogoWhenSet(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	menu := testDocument()
	menu.Restaurant.LogoURL = "/img/logo.png"
	page := builder.Page(menu, nil, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	assert.Equal(t, "/img/logo.png", doc.Find("#logo img").AttrOr("src", ""))
}

func TestPageDarkThemeClass(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	page := builder.Page(testDocument(), nil, domain.Preferences{Language: "es", Dark: true})
	doc := renderPage(t, page)

	assert.True(t, doc.Find("body").HasClass("dark"))
}

func TestPageDescriptionMarkdownIsRenderedAndSanitised(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	menu := testDocument()
	menu.Items[1].Description = "Con papas *fritas* <script>alert(1)</script>"
	page := builder.Page(menu, nil, domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	desc := doc.Find("#platos .card .desc")
	require.Equal(t, 1, desc.Length())
	descHTML, err := desc.Html()
	require.NoError(t, err)
	assert.Contains(t, descHTML, "<em>fritas</em>")
	assert.NotContains(t, descHTML, "<script>")
}

func TestPageLanguageToggleShowsTargetLanguage(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)

	es := renderPage(t, builder.Page(testDocument(), nil, domain.Preferences{Language: "es"}))
	assert.Equal(t, "English", es.Find("#langToggle").Text())

	en := renderPage(t, builder.Page(testDocument(), nil, domain.Preferences{Language: "en"}))
	assert.Equal(t, "Español", en.Find("#langToggle").Text())
}

func TestUnavailablePageKeepsControls(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	page := builder.Unavailable(domain.Preferences{Language: "es"})
	doc := renderPage(t, page)

	require.Equal(t, 1, doc.Find("#unavailable").Length())
	assert.Equal(t, 1, doc.Find("#langToggle").Length())
	assert.Equal(t, 1, doc.Find("#themeToggle").Length())
	assert.Equal(t, 0, doc.Find(".card").Length())
}

func TestLikeControlFragment(t *testing.T) {
	t.Parallel()

	builder := testBuilder(t)
	lc := builder.LikeControl("agua_mineral", 3, "es")

	var buf bytes.Buffer
	require.NoError(t, LikeControlComponent(lc).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)

	control := doc.Find(".like-control")
	require.Equal(t, 1, control.Length())
	assert.Equal(t, "agua_mineral", control.AttrOr("data-item-id", ""))
	assert.Equal(t, "3", control.Find(".like-count").Text())

	btn := control.Find(".like-btn")
	assert.Equal(t, "/menu/items/agua_mineral/like", btn.AttrOr("hx-post", ""))
	assert.Equal(t, "closest .like-control", btn.AttrOr("hx-target", ""))
}

func TestInitials(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"La Esquina":            "LE",
		"don julio":             "DJ",
		"Único":                 "Ú",
		"El Buen Sabor Criollo": "EB",
		"":                      "R",
	}
	for name, want := range cases {
		assert.Equal(t, want, initials(name), "name %q", name)
	}
}
