// Package favorites keeps saved palette and font snapshots, newest first, in a key-value slot.
package favorites

import (
	"fmt"

	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/palette"
)

// DateLayout is the format of Favorite.CreatedAt.
const DateLayout = "2006-01-02"

// Favorite is an independent snapshot of a palette and font pair.
// Palette and Pair are value types, so a Favorite never shares state with the live configuration.
type Favorite struct {
	ID        int64           `json:"id"`
	Palette   palette.Palette `json:"palette"`
	Fonts     font.Pair       `json:"fonts"`
	CreatedAt string          `json:"createdAt"`
}

func (f Favorite) String() string {
	return fmt.Sprintf("%d %s (%s)", f.ID, f.Fonts, f.CreatedAt)
}

func (f Favorite) validate() error {
	if err := f.Palette.Validate(); err != nil {
		return err
	}
	if f.Fonts.Heading == "" || f.Fonts.Body == "" {
		return fmt.Errorf("favorite %d has an empty font name", f.ID)
	}
	return nil
}
