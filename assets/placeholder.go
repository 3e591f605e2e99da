package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"path"
	"strings"

	"golang.org/x/image/vector"
)

// Sprite cell size shared by every game image
const (
	spriteWidth  = 101
	spriteHeight = 171
)

var (
	waterTop   = color.RGBA{R: 70, G: 130, B: 230, A: 255}
	waterSide  = color.RGBA{R: 40, G: 90, B: 180, A: 255}
	stoneTop   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	stoneSide  = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	grassTop   = color.RGBA{R: 90, G: 190, B: 80, A: 255}
	grassSide  = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	bugBody    = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	bugEye     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	playerSkin = color.RGBA{R: 240, G: 200, B: 160, A: 255}
	playerBody = color.RGBA{R: 40, G: 80, B: 200, A: 255}
	starFill   = color.RGBA{R: 255, G: 210, B: 0, A: 255}
	unknown    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Placeholder paints a stand-in sprite for an image that could not be found.
// The shape is picked from the file name.
func Placeholder(p string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, spriteWidth, spriteHeight))
	name := strings.ToLower(path.Base(p))

	switch {
	case strings.Contains(name, "water"):
		paintBlock(img, waterTop, waterSide)
	case strings.Contains(name, "stone"):
		paintBlock(img, stoneTop, stoneSide)
	case strings.Contains(name, "grass"):
		paintBlock(img, grassTop, grassSide)
	case strings.Contains(name, "bug"), strings.Contains(name, "enemy"):
		fillPolygon(img, ellipse(50, 115, 42, 26, 24), bugBody)
		fillPolygon(img, ellipse(78, 108, 6, 6, 12), bugEye)
	case strings.Contains(name, "star"):
		fillPolygon(img, star(50, 110, 40, 16), starFill)
	case strings.Contains(name, "char"), strings.Contains(name, "boy"), strings.Contains(name, "player"):
		fillPolygon(img, ellipse(50, 85, 18, 18, 20), playerSkin)
		fillPolygon(img, rect(34, 103, 32, 40), playerBody)
	default:
		fillPolygon(img, rect(0, 50, spriteWidth, 121), unknown)
	}

	return img
}

// paintBlock draws a board block: a top face with a darker front edge
func paintBlock(dst draw.Image, top, side color.RGBA) {
	fillPolygon(dst, rect(0, 50, spriteWidth, 80), top)
	fillPolygon(dst, rect(0, 130, spriteWidth, 41), side)
}

type point struct{ x, y float32 }

func fillPolygon(dst draw.Image, pts []point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func rect(x, y, w, h float32) []point {
	return []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

func ellipse(cx, cy, rx, ry float32, segments int) []point {
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = point{cx + rx*float32(math.Cos(a)), cy + ry*float32(math.Sin(a))}
	}
	return pts
}

// star returns a five-pointed star with its top point straight up
func star(cx, cy, outer, inner float32) []point {
	pts := make([]point, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/5
		pts[i] = point{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))}
	}
	return pts
}
