// Package export encodes a palette and font pair as stylesheet variables or a JSON document.
package export

import (
	"strings"
	"text/template"

	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/palette"
	"github.com/samber/lo"
)

// Variable names, in palette order.
var colorVariables = [palette.Size]string{
	"--color-bg",
	"--color-text",
	"--color-accent",
	"--color-sec-1",
	"--color-sec-2",
}

var stylesheetTemplate = lo.Must(template.New("stylesheet").Funcs(template.FuncMap{
	"var": func(i int) string { return colorVariables[i] },
}).Parse(`:root {
{{- range $i, $c := .Palette }}
    {{ var $i }}: {{ $c }};
{{- end }}
    --font-heading: '{{ .Fonts.Heading }}', sans-serif;
    --font-body: '{{ .Fonts.Body }}', sans-serif;
}`))

// Stylesheet renders the CSS custom-property block for p and f.
func Stylesheet(p palette.Palette, f font.Pair) string {
	var b strings.Builder
	lo.Must0(stylesheetTemplate.Execute(&b, struct {
		Palette palette.Palette
		Fonts   font.Pair
	}{p, f}))
	return b.String()
}
