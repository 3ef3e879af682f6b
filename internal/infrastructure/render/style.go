package render

import "path/filepath"

// Style is the immutable document style configuration. It is constructed
// once at startup and passed into each renderer; nothing mutates it after
// initialization, so renderers can share it across requests.
type Style struct {
	FontFamily string
	FontFile   string // Unicode-capable TTF, required for Vietnamese diacritics
	TitleSize  float64
	H2Size     float64
	H3Size     float64
	BodySize   float64
}

// DefaultStyle returns the stock style backed by DejaVuSans from the given
// fonts directory.
func DefaultStyle(fontsDir string) Style {
	return Style{
		FontFamily: "DejaVuSans",
		FontFile:   filepath.Join(fontsDir, "DejaVuSans.ttf"),
		TitleSize:  18,
		H2Size:     14,
		H3Size:     12,
		BodySize:   11,
	}
}
