// Open Graph card rendering. Produces a PNG with the site name, the
// article title word-wrapped in the centre, and the tagline at the bottom.
package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	ogWidth  = 1200
	ogHeight = 630
)

var (
	ogTeal = color.RGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}
	ogGrey = color.RGBA{R: 0x4A, G: 0x55, B: 0x68, A: 0xFF}
)

// OGImageAPI renders the card for the title query parameter.
func (hnd *Handler) OGImageAPI(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		title = siteName
	}

	img, err := renderOGCard(title)
	if err != nil {
		hnd.log.Error("rendering og image: %s", err.Error())
		http.Error(w, "failed to generate OG image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400, s-maxage=86400")
	w.Write(img)
}

func renderOGCard(title string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// Win95 teal strip along the top
	draw.Draw(img, image.Rect(0, 0, ogWidth, 16), image.NewUniform(ogTeal), image.Point{}, draw.Src)

	nameFace, err := loadFace(gobold.TTF, 80)
	if err != nil {
		return nil, err
	}
	titleFace, err := loadFace(gobold.TTF, 50)
	if err != nil {
		return nil, err
	}
	metaFace, err := loadFace(goregular.TTF, 24)
	if err != nil {
		return nil, err
	}

	drawCentered(img, siteName, nameFace, color.Black, 160)

	lines := wrapText(title, titleFace, ogWidth-160)
	if len(lines) > 3 {
		lines = lines[:3]
	}
	lineHeight := titleFace.Metrics().Height.Ceil() + 10
	y := (ogHeight - len(lines)*lineHeight) / 2 + titleFace.Metrics().Ascent.Ceil()
	for _, line := range lines {
		drawCentered(img, line, titleFace, ogGrey, y)
		y += lineHeight
	}

	drawCentered(img, "Crypto Security News & Trading Insights", metaFace, ogGrey, ogHeight-40)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawCentered(img *image.RGBA, s string, face font.Face, c color.Color, y int) {
	width := font.MeasureString(face, s).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P((ogWidth-width)/2, y),
	}
	d.DrawString(s)
}

// wrapText splits text into lines that fit within maxWidth pixels.
func wrapText(text string, face font.Face, maxWidth int) []string {
	words := splitWords(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		trial := current + " " + word
		if font.MeasureString(face, trial).Ceil() <= maxWidth {
			current = trial
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}

func splitWords(s string) []string {
	var words []string
	word := ""
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if word != "" {
				words = append(words, word)
				word = ""
			}
		} else {
			word += string(r)
		}
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}

func loadFace(ttf []byte, sizePt float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
