// Command qrterm builds a QR Code for its argument, prints the chosen
// version/error-correction level/mask, and renders the symbol to the
// terminal as Unicode half-blocks.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tinyqr-go/qrcode"
)

func main() {
	ecc := flag.String("ecc", "medium", "error correction level: low, medium, quartile, high")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qrterm [-ecc level] <text>")
		os.Exit(2)
	}
	text := flag.Arg(0)

	level, err := parseECC(*ecc)
	if err != nil {
		log.Fatal(err)
	}

	code, err := qrcode.NewBuilder(text).MinErrorCorrection(level).Build()
	if err != nil {
		log.Fatalf("building QR code: %v", err)
	}
	fmt.Fprintf(os.Stderr, "version %d, %v error correction, mask %d\n",
		code.Version(), code.ErrorCorrectionLevel(), code.Mask())

	fmt.Fprint(os.Stdout, code.String())
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
