package domain

// Palette maps named colour roles onto CSS colour values. Roles absent from
// the loaded document keep the stylesheet defaults.
type Palette struct {
	Brand   string `json:"brand,omitempty"`
	Accent  string `json:"accent,omitempty"`
	BG      string `json:"bg,omitempty"`
	Surface string `json:"surface,omitempty"`
	Text    string `json:"text,omitempty"`
	Muted   string `json:"muted,omitempty"`
}

// Roles returns the palette as ordered (role, value) pairs, skipping unset roles.
func (p Palette) Roles() [][2]string {
	all := [][2]string{
		{"brand", p.Brand},
		{"accent", p.Accent},
		{"bg", p.BG},
		{"surface", p.Surface},
		{"text", p.Text},
		{"muted", p.Muted},
	}
	out := make([][2]string, 0, len(all))
	for _, role := range all {
		if role[1] != "" {
			out = append(out, role)
		}
	}
	return out
}

// Restaurant describes the brand block of a menu document. Immutable once
// loaded; replaced wholesale on reload.
type Restaurant struct {
	Name    string  `json:"name" validate:"required"`
	Tagline string  `json:"tagline,omitempty"`
	LogoURL string  `json:"logoURL,omitempty"`
	Palette Palette `json:"palette,omitempty"`
}

// Category is a named, ordered menu section. Document order is display order.
type Category struct {
	ID    string `json:"id" validate:"required"`
	Emoji string `json:"emoji"`
	Label string `json:"label" validate:"required"`
}

// MenuItem is a single dish or drink. Items carry no explicit identifier;
// interaction identity is derived from the title (see the identity package).
type MenuItem struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"desc,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"img"`
	CategoryID  string  `json:"cat" validate:"required"`
}

// Document is the complete menu for one language. Owned by the page session
// and fully replaced on each reload; never patched incrementally.
type Document struct {
	Restaurant Restaurant `json:"restaurant" validate:"required"`
	Categories []Category `json:"categories" validate:"required,min=1,dive"`
	Items      []MenuItem `json:"menu" validate:"dive"`
}

// ItemsFor returns the document's items for one category in document order.
func (d Document) ItemsFor(categoryID string) []MenuItem {
	var out []MenuItem
	for _, item := range d.Items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out
}
