package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/palette"
)

// Filename is the suggested name for downloaded JSON exports.
const Filename = "aesthetic-config.json"

// Timestamp layout of ExportedAt: ISO-8601 in UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Document is the JSON export of a configuration.
type Document struct {
	Palette    []string  `json:"palette" jsonschema:"minItems=5,maxItems=5"`
	Fonts      font.Pair `json:"fonts"`
	ExportedAt string    `json:"exportedAt" jsonschema:"format=date-time"`
}

// NewDocument snapshots p and f at now.
func NewDocument(p palette.Palette, f font.Pair, now time.Time) Document {
	colors := make([]string, 0, palette.Size)
	for _, c := range p {
		colors = append(colors, string(c))
	}

	return Document{
		Palette:    colors,
		Fonts:      f,
		ExportedAt: now.UTC().Format(TimestampLayout),
	}
}

// Encode renders the document as two-space indented JSON.
func (d Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Decode parses an exported document and checks that it carries a usable configuration.
func Decode(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decode export: %w", err)
	}

	if _, err := d.Config(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Config returns the palette and font pair held by the document.
func (d Document) Config() (Configuration, error) {
	p, err := palette.FromStrings(d.Palette)
	if err != nil {
		return Configuration{}, err
	}
	if d.Fonts.Heading == "" || d.Fonts.Body == "" {
		return Configuration{}, fmt.Errorf("export has an empty font name")
	}
	return Configuration{Palette: p, Fonts: d.Fonts}, nil
}

// Configuration is a decoded palette and font pair.
type Configuration struct {
	Palette palette.Palette
	Fonts   font.Pair
}

// Schema returns the JSON schema describing Document.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&Document{})
	schema.Title = "Palette and font configuration"
	return json.MarshalIndent(schema, "", "  ")
}
