package render

import (
	"bytes"
	"image/png"
	"testing"

	"studio_ops/internal/domain/entities"
)

func TestRenderPNG(t *testing.T) {
	r := NewPNGRenderer()

	t.Run("decodes with item-scaled height", func(t *testing.T) {
		inv := entities.Invoice{
			InvoiceNumber: "INV-20250722-0001",
			Items: []entities.InvoiceItem{
				{Description: "Design A", Price: 10000},
				{Description: "Design B", Price: 20000},
			},
			Total: 33300,
		}
		client := &entities.Client{Name: "Alice Creative"}

		data, err := r.RenderPNG(inv, client)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("output is not a decodable png: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != 600 {
			t.Fatalf("expected width 600, got %d", bounds.Dx())
		}
		if bounds.Dy() != 400+30*len(inv.Items) {
			t.Fatalf("expected height %d, got %d", 400+30*len(inv.Items), bounds.Dy())
		}
	})

	t.Run("nil client and empty fields", func(t *testing.T) {
		data, err := r.RenderPNG(entities.Invoice{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := png.Decode(bytes.NewReader(data)); err != nil {
			t.Fatalf("output is not a decodable png: %v", err)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{33300, "33,300"},
		{1234567, "1,234,567"},
		{1500.5, "1,500.5"},
		{-25000, "-25,000"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.in); got != tc.want {
			t.Fatalf("formatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
