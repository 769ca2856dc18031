package component

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileAnimation shows one tile of a tiled sheet at a time, either a static
// tile or a range cycled with per-frame durations. Tiles are laid out
// left-to-right, top-to-bottom.
type TileAnimation struct {
	Sheet  *ebiten.Image
	FrameW int
	FrameH int
	Cols   int

	current   int
	start     int
	end       int
	durations []time.Duration
	elapsed   time.Duration
	loop      bool
	playing   bool
	tiles     map[int]*ebiten.Image
}

// NewTileAnimation creates an animator over `sheet` split into frameW x frameH
// tiles. A nil sheet is allowed; the animator still tracks tiles but draws
// nothing.
func NewTileAnimation(sheet *ebiten.Image, frameW, frameH int) *TileAnimation {
	a := &TileAnimation{
		Sheet:  sheet,
		FrameW: frameW,
		FrameH: frameH,
		Cols:   1,
		tiles:  make(map[int]*ebiten.Image),
	}
	if sheet != nil && frameW > 0 {
		if cols := sheet.Bounds().Dx() / frameW; cols > 0 {
			a.Cols = cols
		}
	}
	return a
}

// SetStaticFrame shows a single tile.
func (a *TileAnimation) SetStaticFrame(tile int) {
	if a == nil {
		return
	}
	if tile < 0 {
		tile = 0
	}
	a.current = tile
	a.elapsed = 0
}

// PlayAnimation cycles tiles start..end. durations[i] is how long the i-th
// tile of the range stays up; missing entries reuse the last one.
func (a *TileAnimation) PlayAnimation(durations []time.Duration, start, end int, loop bool) {
	if a == nil || end < start || len(durations) == 0 {
		return
	}
	a.durations = durations
	a.start = start
	a.end = end
	a.loop = loop
	a.current = start
	a.elapsed = 0
	a.playing = true
}

// StopAnimation freezes on the current tile.
func (a *TileAnimation) StopAnimation() {
	if a == nil {
		return
	}
	a.playing = false
	a.elapsed = 0
}

// Update advances the animation by dt. Call once per game update with
// time.Second / ebiten.TPS().
func (a *TileAnimation) Update(dt time.Duration) {
	if a == nil || !a.playing || dt <= 0 {
		return
	}
	a.elapsed += dt
	for a.playing {
		d := a.frameDuration(a.current - a.start)
		if d <= 0 || a.elapsed < d {
			return
		}
		a.elapsed -= d
		if a.current < a.end {
			a.current++
			continue
		}
		if a.loop {
			a.current = a.start
			continue
		}
		a.playing = false
		a.elapsed = 0
	}
}

func (a *TileAnimation) frameDuration(i int) time.Duration {
	if i < 0 || len(a.durations) == 0 {
		return 0
	}
	if i >= len(a.durations) {
		i = len(a.durations) - 1
	}
	return a.durations[i]
}

// CurrentTile returns the tile index on screen.
func (a *TileAnimation) CurrentTile() int {
	if a == nil {
		return 0
	}
	return a.current
}

func (a *TileAnimation) Playing() bool {
	return a != nil && a.playing
}

// Draw draws the current tile. If `op` is nil a new DrawImageOptions will be
// used.
func (a *TileAnimation) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if a == nil || a.Sheet == nil || a.FrameW <= 0 || a.FrameH <= 0 {
		return
	}
	frm := a.tile(a.current)
	if frm == nil {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(frm, &dop)
}

// tile slices and caches the sub-image for idx.
func (a *TileAnimation) tile(idx int) *ebiten.Image {
	if frm, ok := a.tiles[idx]; ok {
		return frm
	}
	col := idx % a.Cols
	row := idx / a.Cols
	sx := col * a.FrameW
	sy := row * a.FrameH
	r := image.Rect(sx, sy, sx+a.FrameW, sy+a.FrameH)
	if !r.In(a.Sheet.Bounds()) {
		return nil
	}
	frm := a.Sheet.SubImage(r).(*ebiten.Image)
	if a.tiles == nil {
		a.tiles = make(map[int]*ebiten.Image)
	}
	a.tiles[idx] = frm
	return frm
}

// Size returns the frame width/height.
func (a *TileAnimation) Size() (int, int) { return a.FrameW, a.FrameH }
