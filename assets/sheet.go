package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

const (
	ActorFrameW = 16
	ActorFrameH = 24
	// ActorFrames is the tile count of an actor sheet: stand, four left,
	// four right.
	ActorFrames = 9
)

// legOffsets is the stride pose for each of the four walk frames.
var legOffsets = [4][2]int{{0, 0}, {2, -2}, {0, 0}, {-2, 2}}

// BuildActorSheet draws a single-row actor sheet. Tile 0 faces the viewer,
// tiles 1-4 walk left and tiles 5-8 walk right.
func BuildActorSheet(body color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ActorFrameW*ActorFrames, ActorFrameH))
	for i := 0; i < ActorFrames; i++ {
		ox := i * ActorFrameW
		fill(img, ox+4, 4, 8, 14, body)

		switch {
		case i == 0:
			fill(img, ox+5, 7, 2, 2, colornames.White)
			fill(img, ox+9, 7, 2, 2, colornames.White)
			fill(img, ox+5, 18, 2, 6, colornames.Dimgray)
			fill(img, ox+9, 18, 2, 6, colornames.Dimgray)
		case i <= 4:
			legs := legOffsets[i-1]
			fill(img, ox+5, 7, 2, 2, colornames.White)
			fill(img, ox+5+legs[0], 18, 2, 6, colornames.Dimgray)
			fill(img, ox+9+legs[1], 18, 2, 6, colornames.Dimgray)
		default:
			legs := legOffsets[i-5]
			fill(img, ox+9, 7, 2, 2, colornames.White)
			fill(img, ox+5+legs[0], 18, 2, 6, colornames.Dimgray)
			fill(img, ox+9+legs[1], 18, 2, 6, colornames.Dimgray)
		}
	}
	return img
}

// ActorSheet returns BuildActorSheet as an *ebiten.Image.
func ActorSheet(body color.Color) *ebiten.Image {
	return ebiten.NewImageFromImage(BuildActorSheet(body))
}

func fill(img *image.RGBA, x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}
