package domain

// Preferences is the per-device slice of interaction state: the selected menu
// language and the dark-theme flag. Like counts live in the counter store.
type Preferences struct {
	Language string
	Dark     bool
}

// PopularItem pairs a menu item with its current like count. Derived on every
// render, never persisted.
type PopularItem struct {
	Item  MenuItem
	Count int64
}
