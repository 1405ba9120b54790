// Package preview renders palettes, contrast badges and favorites for the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/favorites"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/icon"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/style"
	"github.com/samber/lo"
)

const (
	swatchWidth  = 16
	swatchHeight = 3
	cardMinWidth = 32
)

// Badge renders a contrast ratio as "W: 4.5", styled by whether it meets AA.
func Badge(label string, ratio float64) string {
	text := fmt.Sprintf("%s: %.1f", label, ratio)
	if color.MeetsAA(ratio) {
		return style.Pass(text)
	}
	return style.Fail(text)
}

// Swatch renders one color block with its hex code and contrast badges.
func Swatch(s palette.Swatch, index int) string {
	text := color.Black
	if s.VsWhite > s.VsBlack {
		text = color.White
	}

	block := lipgloss.NewStyle().
		Background(s.Color.Lipgloss()).
		Foreground(text.Lipgloss()).
		Width(swatchWidth).
		Height(swatchHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(fmt.Sprintf("%d %s", index+1, s.Color))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		block,
		Badge("W", s.VsWhite)+" "+Badge("B", s.VsBlack),
	)
}

// Swatches lays out every swatch in a row, or stacked when width is too narrow.
func Swatches(swatches []palette.Swatch, width int) string {
	blocks := lo.Map(swatches, func(s palette.Swatch, i int) string {
		return Swatch(s, i)
	})

	if width < len(blocks)*(swatchWidth+1) {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	blocks = lo.Map(blocks, func(b string, _ int) string {
		return lipgloss.NewStyle().MarginRight(1).Render(b)
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Card renders a mock page in the assigned roles.
func Card(roles palette.Roles, fonts font.Pair, width int) string {
	width = max(width, cardMinWidth)

	page := lipgloss.NewStyle().
		Background(roles.Background.Lipgloss()).
		Foreground(roles.Text.Lipgloss()).
		Padding(1, 2).
		Width(width)

	on := func(fg color.Color) lipgloss.Style {
		return lipgloss.NewStyle().Background(roles.Background.Lipgloss()).Foreground(fg.Lipgloss())
	}

	heading := on(roles.Text).Bold(true).Render(fonts.Heading)
	body := on(roles.Text).Render(fmt.Sprintf("Body copy set in %s.", fonts.Body))
	button := lipgloss.NewStyle().
		Background(roles.Accent.Lipgloss()).
		Foreground(roles.Background.Lipgloss()).
		Padding(0, 2).
		Render("Get started")
	tags := on(roles.Secondary[0]).Render("● secondary") + on(roles.Background).Render("  ") + on(roles.Secondary[1]).Render("● secondary")
	ratio := on(roles.Text).Faint(true).Render(fmt.Sprintf("%s layout, text contrast %.2f", roles.Orientation, roles.Contrast()))

	return page.Render(strings.Join([]string{heading, "", body, "", button, "", tags, ratio}, "\n"))
}

// Fonts renders the heading/body pairing line.
func Fonts(f font.Pair) string {
	return fmt.Sprintf("%s %s %s %s",
		icon.Get(icon.Font),
		style.Bold(f.Heading),
		style.Faint("/"),
		f.Body,
	)
}

// View renders the full preview of a view.
func View(v app.View, width int) string {
	return strings.Join([]string{
		Fonts(v.Fonts),
		"",
		Card(v.Roles, v.Fonts, min(width, 64)),
		"",
		Swatches(v.Swatches, width),
	}, "\n")
}

// Strip renders a palette as a row of small colored cells.
func Strip(p palette.Palette) string {
	cells := lo.Map(p.Colors(), func(c color.Color, _ int) string {
		return lipgloss.NewStyle().Background(c.Lipgloss()).Render("   ")
	})
	return strings.Join(cells, "")
}

// Favorite renders one favorites list row.
func Favorite(f favorites.Favorite, width int) string {
	line := fmt.Sprintf("%s  %s  %s %s", Strip(f.Palette), style.Faint(f.CreatedAt), f.Fonts.Heading, style.Faint("/ "+f.Fonts.Body))
	return truncate.StringWithTail(line, uint(max(width, 0)), "…")
}

// Favorites renders the favorites list with the row at selected highlighted.
// An empty list renders a hint instead.
func Favorites(list []favorites.Favorite, selected, width int) string {
	if len(list) == 0 {
		return style.Faint("No favorites yet. Press s to save the current palette.")
	}

	rows := make([]string, 0, len(list))
	for i, f := range list {
		marker := "  "
		if i == selected {
			marker = lipgloss.NewStyle().Foreground(style.AccentColor).Render(icon.Get(icon.Heart)) + " "
		}
		rows = append(rows, marker+Favorite(f, width-lipgloss.Width(marker)))
	}

	return strings.Join(rows, "\n")
}

// Indent shifts every line of s right by n cells.
func Indent(s string, n uint) string {
	return indent.String(s, n)
}
