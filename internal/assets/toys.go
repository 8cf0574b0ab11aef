package assets

import "github.com/vovakirdan/hamster-dodge/internal/core"

// Squeaky toy IDs.
const (
	Banana     ID = "banana"
	Carrot     ID = "carrot"
	Eggplant   ID = "eggplant"
	Mushroom   ID = "mushroom"
	Strawberry ID = "strawberry"
)

func init() {
	Register(Sprite{ID: Banana, Name: "Banana", Glyph: ')', Color: core.ColorBrightYellow})
	Register(Sprite{ID: Carrot, Name: "Carrot", Glyph: 'V', Color: core.ColorOrange})
	Register(Sprite{ID: Eggplant, Name: "Eggplant", Glyph: '0', Color: core.ColorPurple})
	Register(Sprite{ID: Mushroom, Name: "Mushroom", Glyph: 'T', Color: core.ColorBrightRed})
	Register(Sprite{ID: Strawberry, Name: "Strawberry", Glyph: '*', Color: core.ColorRed})
}
