package entity

// Game is a catalog entry for a digital key. Platforms, categories and
// the payment allow-lists are stored as explicit sets, not joined
// strings. An inactive game is hidden from buyers but stays visible to
// operators.
type Game struct {
	Base
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	Platforms      []string        `db:"platforms"`
	Categories     []string        `db:"categories"`
	Price          float64         `db:"price"`
	ImageURL       string          `db:"image_url"`
	IsActive       bool            `db:"is_active"`
	PaymentMethods []PaymentMethod `db:"payment_methods"`
	PaymentModes   []PaymentMode   `db:"payment_modes"`
}

func (g *Game) HasPlatform(platform string) bool {
	for _, p := range g.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

func (g *Game) AcceptsMethod(method PaymentMethod) bool {
	for _, m := range g.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func (g *Game) AcceptsMode(mode PaymentMode) bool {
	for _, m := range g.PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}
