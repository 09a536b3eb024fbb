// pkg/signature/signature.go
package signature

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

// Pad basit bir imza yüzeyidir: pointer olayları vuruşlara dönüşür,
// vuruşlar beyaz zemin üzerine siyah çizgi olarak işlenir. Boş yüzeyin
// export'u da geçerli bir PNG'dir; imzasız onay akışı buna dayanır.
type Pad struct {
	mu      sync.Mutex
	canvas  *image.RGBA
	width   int
	height  int
	drawing bool
	lastX   int
	lastY   int
	strokes int
}

// NewPad verilen boyutta beyaz bir yüzey kurar.
func NewPad(width, height int) *Pad {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	p := &Pad{width: width, height: height}
	p.reset()
	return p
}

func (p *Pad) reset() {
	canvas := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			canvas.SetRGBA(x, y, white)
		}
	}
	p.canvas = canvas
	p.strokes = 0
}

// PointerDown yeni bir vuruş başlatır.
func (p *Pad) PointerDown(x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawing = true
	p.lastX, p.lastY = x, y
	p.plot(x, y)
	p.strokes++
}

// PointerMove aktif vuruşu son noktadan yeni noktaya uzatır. Vuruş
// başlamadıysa no-op'tur; pad dışında başlayan sürüklemeler çizmez.
func (p *Pad) PointerMove(x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.drawing {
		return
	}
	p.line(p.lastX, p.lastY, x, y)
	p.lastX, p.lastY = x, y
}

// PointerUp aktif vuruşu kapatır.
func (p *Pad) PointerUp() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawing = false
}

// Clear yüzeyi boş haline döndürür.
func (p *Pad) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawing = false
	p.reset()
}

// IsEmpty hiç vuruş işlenmedi mi?
func (p *Pad) IsEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.strokes == 0
}

// ExportPNG yüzeyi PNG olarak kodlar. Boş yüzey de geçerli çıktı verir.
func (p *Pad) ExportPNG() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Pad) plot(x, y int) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	black := color.RGBA{A: 255}
	p.canvas.SetRGBA(x, y, black)
}

// line iki nokta arasını Bresenham ile doldurur; kalem kalınlığı 1px.
func (p *Pad) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
