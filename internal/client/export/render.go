// Package export rasterizes the certificate preview to a PNG and saves it
// locally, the terminal counterpart of the browser's render-and-download.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/certvera/certvera/internal/common"

	// Logo decoding.
	_ "image/gif"
	_ "image/jpeg"
)

// Preview carries the values drawn onto the certificate card.
type Preview struct {
	Organization   string
	StudentName    string
	Course         string
	DateIssued     string
	CertificateID  string
	RecipientEmail string
	Logo           []byte
}

const (
	canvasWidth  = 900
	canvasHeight = 620
	logoSize     = 96
)

var (
	colorBackground = color.RGBA{R: 0xfa, G: 0xfa, B: 0xff, A: 0xff}
	colorBorder     = color.RGBA{R: 0x6d, G: 0x5b, B: 0xd3, A: 0xff}
	colorInk        = color.RGBA{R: 0x22, G: 0x22, B: 0x2e, A: 0xff}
	colorAccent     = color.RGBA{R: 0x43, G: 0x38, B: 0xca, A: 0xff}
	colorMuted      = color.RGBA{R: 0x6b, G: 0x6b, B: 0x76, A: 0xff}
)

// Renderer draws Preview values onto a certificate card image.
type Renderer struct {
	face font.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (r *Renderer) drawCentered(dst *image.RGBA, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: r.face,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(canvasWidth/2) - width/2,
		Y: fixed.I(y),
	}
	d.DrawString(text)
}

func (r *Renderer) drawAt(dst *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func drawBorder(dst *image.RGBA, thickness int, col color.Color) {
	bounds := dst.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for t := 0; t < thickness; t++ {
			dst.Set(x, bounds.Min.Y+t, col)
			dst.Set(x, bounds.Max.Y-1-t, col)
		}
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for t := 0; t < thickness; t++ {
			dst.Set(bounds.Min.X+t, y, col)
			dst.Set(bounds.Max.X-1-t, y, col)
		}
	}
}

// drawLogo decodes the logo bytes and scales them into a fixed-size slot at
// the top of the card. Unsupported image data is a rasterization failure.
func (r *Renderer) drawLogo(dst *image.RGBA, logo []byte) error {
	decoded, _, err := image.Decode(bytes.NewReader(logo))
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}

	slot := image.Rect(
		(canvasWidth-logoSize)/2, 40,
		(canvasWidth+logoSize)/2, 40+logoSize,
	)
	xdraw.ApproxBiLinear.Scale(dst, slot, decoded, decoded.Bounds(), xdraw.Over, nil)
	return nil
}

// Render draws the preview card: logo slot, organization header, title,
// student, course, date/id row, and the recipient footer.
func (r *Renderer) Render(p Preview) (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(colorBackground), image.Point{}, xdraw.Src)
	drawBorder(canvas, 4, colorBorder)

	headerY := 90
	if len(p.Logo) > 0 {
		if err := r.drawLogo(canvas, p.Logo); err != nil {
			return nil, err
		}
		headerY = 170
	}

	r.drawCentered(canvas, headerY, orDefault(p.Organization, "Organization Name"), colorAccent)
	r.drawCentered(canvas, headerY+60, "Certificate of Achievement", colorInk)
	r.drawCentered(canvas, headerY+100, "This certificate is proudly presented to", colorMuted)
	r.drawCentered(canvas, headerY+140, orDefault(p.StudentName, "Student Name"), colorAccent)
	r.drawCentered(canvas, headerY+180,
		fmt.Sprintf("For successfully completing %s", orDefault(p.Course, "Course Name")), colorInk)

	r.drawAt(canvas, 80, headerY+250, fmt.Sprintf("Date Issued: %s", orDefault(p.DateIssued, "yyyy-mm-dd")), colorInk)
	r.drawAt(canvas, canvasWidth/2+60, headerY+250, fmt.Sprintf("Certificate ID: %s", orDefault(p.CertificateID, "ID")), colorInk)

	r.drawAt(canvas, 80, canvasHeight-50, fmt.Sprintf("Recipient: %s", orDefault(p.RecipientEmail, "Email")), colorMuted)
	r.drawAt(canvas, canvasWidth-300, canvasHeight-50, orDefault(p.Organization, "Organization Name"), colorMuted)

	return canvas, nil
}

// Encode writes the rendered card as PNG.
func (r *Renderer) Encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", common.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}
