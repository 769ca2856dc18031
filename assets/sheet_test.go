package assets

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestBuildActorSheet(t *testing.T) {
	img := BuildActorSheet(colornames.Steelblue)
	assert.Equal(t, image.Rect(0, 0, ActorFrameW*ActorFrames, ActorFrameH), img.Bounds())

	eye := func(tile, x int) bool {
		r, g, b, _ := img.At(tile*ActorFrameW+x, 7).RGBA()
		return r == 0xffff && g == 0xffff && b == 0xffff
	}

	cases := []struct {
		name        string
		tile        int
		left, right bool
	}{
		{"stand", 0, true, true},
		{"left_first", 1, true, false},
		{"left_last", 4, true, false},
		{"right_first", 5, false, true},
		{"right_last", 8, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.left, eye(c.tile, 5))
			assert.Equal(t, c.right, eye(c.tile, 9))
		})
	}
}
