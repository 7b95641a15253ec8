package assets

import "testing"

func TestDecodeImageSizes(t *testing.T) {
	cases := []struct {
		path string
		w, h int
	}{
		{"background.png", 320, 180},
		{"assets/miner.png", 96, 16},
		{"minerdown.png", 96, 16},
		{"bat.png", 64, 16},
		{"spike.png", 16, 16},
		{"copper.png", 16, 16},
		{"silver.png", 16, 16},
		{"gold.png", 16, 16},
		{"ground.png", 16, 16},
		{"groundBase.png", 16, 16},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			img, err := DecodeImage(c.path)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != c.w || b.Dy() != c.h {
				t.Fatalf("expected %dx%d, got %dx%d", c.w, c.h, b.Dx(), b.Dy())
			}
		})
	}

	if _, err := DecodeImage("missing.png"); err == nil {
		t.Fatalf("expected missing asset to fail")
	}
	if len(Names()) != len(cases) {
		t.Fatalf("expected %d embedded assets, got %v", len(cases), Names())
	}
}
