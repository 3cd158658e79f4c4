package internal

import (
	"fmt"
	"strings"

	"rsc.io/qr"
)

// RenderQR encodes text as a QR code and renders it for a terminal using
// half-block characters (two modules per character cell), with a one-module
// quiet zone on every side. Dark modules are drawn with the terminal
// foreground so the code scans on both light and dark color schemes.
func RenderQR(text string) (string, error) {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return "", fmt.Errorf("qr encode failed: %w", err)
	}

	const quiet = 1
	size := code.Size + 2*quiet
	black := func(x, y int) bool {
		return code.Black(x-quiet, y-quiet)
	}

	var sb strings.Builder
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			top := black(x, y)
			bottom := y+1 < size && black(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
