package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	canvasWidth      = 600
	baseCanvasHeight = 400
	lineHeight       = 30
)

// PNGRenderer rasterizes an invoice onto a white canvas with the built-in
// bitmap face. Canvas height grows with the number of line items.

type PNGRenderer struct{}

var _ interfaces.IInvoiceRenderer = (*PNGRenderer)(nil)

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{}
}

func (r *PNGRenderer) RenderPNG(inv entities.Invoice, client *entities.Client) ([]byte, error) {
	height := baseCanvasHeight + lineHeight*len(inv.Items)
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	number := inv.InvoiceNumber
	if number == "" {
		number = "-"
	}
	clientName := "-"
	if client != nil && client.Name != "" {
		clientName = client.Name
	}

	y := 20
	y = drawLine(img, 20, y, fmt.Sprintf("INVOICE: %s", number), lineHeight)
	y = drawLine(img, 20, y, fmt.Sprintf("Client: %s", clientName), lineHeight)
	y = drawLine(img, 20, y, fmt.Sprintf("Issued: %s", orDash(inv.IssuedAt)), lineHeight)
	y = drawLine(img, 20, y, fmt.Sprintf("Due: %s", orDash(inv.DueDate)), lineHeight+10)
	y = drawLine(img, 20, y, "Items:", lineHeight)
	for _, it := range inv.Items {
		desc := it.Description
		if desc == "" {
			desc = "-"
		}
		y = drawLine(img, 40, y, fmt.Sprintf("- %s: Rp%s", desc, formatAmount(it.Price)), lineHeight)
	}
	y += 10
	drawLine(img, 20, y, fmt.Sprintf("TOTAL: Rp%s", formatAmount(inv.Total)), lineHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLine renders one text line and returns the next baseline offset.
func drawLine(img *image.RGBA, x, y int, text string, advance int) int {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		// Dot is the baseline; nudge below the given top offset.
		Dot: fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
	return y + advance
}

// formatAmount renders a monetary value with thousands separators, keeping
// any fractional part as-is.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
