package export

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/palette"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	minimal = palette.Palette{"#ffffff", "#000000", "#f3f4f6", "#9ca3af", "#111827"}
	moment  = time.Date(2026, time.October, 19, 8, 30, 0, 123_000_000, time.FixedZone("CEST", 2*60*60))
)

func TestStylesheet(t *testing.T) {
	Convey("Stylesheet", t, func() {
		So(Stylesheet(minimal, font.Default), ShouldEqual, `:root {
    --color-bg: #ffffff;
    --color-text: #000000;
    --color-accent: #f3f4f6;
    --color-sec-1: #9ca3af;
    --color-sec-2: #111827;
    --font-heading: 'Space Grotesk', sans-serif;
    --font-body: 'Inter', sans-serif;
}`)

		Convey("Follows palette order, not luminance", func() {
			p := palette.Palette{"#111827", "#9ca3af", "#f3f4f6", "#000000", "#ffffff"}
			out := Stylesheet(p, font.At(0))
			So(out, ShouldContainSubstring, "--color-bg: #111827;")
			So(out, ShouldContainSubstring, "--color-sec-2: #ffffff;")
			So(out, ShouldContainSubstring, "--font-heading: 'Playfair Display', sans-serif;")
		})
	})
}

func TestDocument(t *testing.T) {
	Convey("Given a document", t, func() {
		doc := NewDocument(minimal, font.Default, moment)

		Convey("The timestamp is ISO-8601 UTC", func() {
			So(doc.ExportedAt, ShouldEqual, "2026-10-19T06:30:00.123Z")
		})

		Convey("It encodes with two-space indentation", func() {
			data, err := doc.Encode()
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{
  "palette": [
    "#ffffff",
    "#000000",
    "#f3f4f6",
    "#9ca3af",
    "#111827"
  ],
  "fonts": {
    "heading": "Space Grotesk",
    "body": "Inter"
  },
  "exportedAt": "2026-10-19T06:30:00.123Z"
}`)
		})

		Convey("Decoding and re-encoding keeps palette and fonts byte-identical", func() {
			data, err := doc.Encode()
			So(err, ShouldBeNil)

			decoded, err := Decode(data)
			So(err, ShouldBeNil)

			cfg, err := decoded.Config()
			So(err, ShouldBeNil)
			again, err := NewDocument(cfg.Palette, cfg.Fonts, time.Now()).Encode()
			So(err, ShouldBeNil)

			field := func(raw []byte, name string) string {
				var m map[string]json.RawMessage
				So(json.Unmarshal(raw, &m), ShouldBeNil)
				return string(m[name])
			}
			So(field(again, "palette"), ShouldEqual, field(data, "palette"))
			So(field(again, "fonts"), ShouldEqual, field(data, "fonts"))
		})
	})

	Convey("Decode rejects unusable documents", t, func() {
		for _, raw := range []string{
			`nope`,
			`{"palette":["#ffffff"],"fonts":{"heading":"Lora","body":"Mulish"}}`,
			`{"palette":["#ffffff","#000000","#f3f4f6","#9ca3af","#11182"],"fonts":{"heading":"Lora","body":"Mulish"}}`,
			`{"palette":["#ffffff","#000000","#f3f4f6","#9ca3af","#111827"],"fonts":{"heading":"Lora"}}`,
		} {
			_, err := Decode([]byte(raw))
			So(err, ShouldNotBeNil)
		}

		_, err := Decode([]byte(`{"palette":[],"fonts":{"heading":"a","body":"b"}}`))
		So(errors.Is(err, palette.ErrInvalidPalette), ShouldBeTrue)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema describes the document fields", t, func() {
		data, err := Schema()
		So(err, ShouldBeNil)

		var schema struct {
			Title      string                     `json:"title"`
			Properties map[string]json.RawMessage `json:"properties"`
		}
		So(json.Unmarshal(data, &schema), ShouldBeNil)
		So(schema.Title, ShouldEqual, "Palette and font configuration")
		So(schema.Properties, ShouldContainKey, "palette")
		So(schema.Properties, ShouldContainKey, "fonts")
		So(schema.Properties, ShouldContainKey, "exportedAt")
	})
}
