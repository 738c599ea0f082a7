// Command qrpreview encodes its argument as a QR Code, writes it as a PNG
// to a temporary file, and opens that file in the user's default browser.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/pkg/browser"

	"github.com/tinyqr-go/qrcode"
)

func main() {
	ecc := flag.String("ecc", "medium", "error correction level: low, medium, quartile, high")
	scale := flag.Int("scale", 8, "pixels per module")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qrpreview [-ecc level] [-scale n] <text>")
		os.Exit(2)
	}

	level, err := parseECC(*ecc)
	if err != nil {
		log.Fatal(err)
	}

	code, err := qrcode.NewBuilder(flag.Arg(0)).MinErrorCorrection(level).Build()
	if err != nil {
		log.Fatalf("building QR code: %v", err)
	}

	f, err := os.CreateTemp("", "qrpreview-*.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := writePNG(f, code, *scale); err != nil {
		log.Fatalf("writing PNG: %v", err)
	}

	if err := browser.OpenFile(f.Name()); err != nil {
		log.Fatalf("opening browser: %v", err)
	}
}

// writePNG renders code as a PNG with a 4-module quiet zone, scale pixels
// per module, into f.
func writePNG(f *os.File, code *qrcode.QrCode, scale int) error {
	if scale < 1 {
		scale = 1
	}
	const border = 4
	dim := (code.Size() + 2*border) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{color.White, color.Black})
	code.DrawIter(border, func(c qrcode.Coordinate, col qrcode.Color) {
		if col != qrcode.Black {
			return
		}
		startX := (c.Y + border) * scale
		startY := (c.X + border) * scale
		for y := 0; y < scale; y++ {
			for x := 0; x < scale; x++ {
				img.SetColorIndex(startX+x, startY+y, 1)
			}
		}
	})

	return png.Encode(f, img)
}

func parseECC(s string) (qrcode.ECC, error) {
	switch s {
	case "low":
		return qrcode.Low, nil
	case "medium":
		return qrcode.Medium, nil
	case "quartile":
		return qrcode.Quartile, nil
	case "high":
		return qrcode.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", s)
	}
}
