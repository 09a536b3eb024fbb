// pkg/signature/signature_test.go
package signature

import (
	"bytes"
	"image/png"
	"testing"
)

func decode(t *testing.T, data []byte) (w, h int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gecerli PNG bekleniyordu: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestExportBlankIsValidPNG(t *testing.T) {
	p := NewPad(120, 60)

	data, err := p.ExportPNG()
	if err != nil {
		t.Fatalf("bos yuzey export hatasi: %v", err)
	}
	w, h := decode(t, data)
	if w != 120 || h != 60 {
		t.Fatalf("120x60 bekleniyordu, %dx%d geldi", w, h)
	}
	if !p.IsEmpty() {
		t.Fatal("vurussuz yuzey bos sayilmali")
	}
}

func TestStrokesAccumulate(t *testing.T) {
	p := NewPad(100, 100)

	p.PointerDown(10, 10)
	p.PointerMove(40, 40)
	p.PointerUp()

	// Ikinci vurus oncekini silmez.
	p.PointerDown(80, 20)
	p.PointerMove(80, 60)
	p.PointerUp()

	if p.IsEmpty() {
		t.Fatal("iki vurustan sonra yuzey bos olmamali")
	}

	data, err := p.ExportPNG()
	if err != nil {
		t.Fatalf("export hatasi: %v", err)
	}
	blank, err := NewPad(100, 100).ExportPNG()
	if err != nil {
		t.Fatalf("export hatasi: %v", err)
	}
	if bytes.Equal(data, blank) {
		t.Fatal("cizimli export bos exportla ayni olmamali")
	}
}

func TestMoveWithoutDownDrawsNothing(t *testing.T) {
	p := NewPad(50, 50)

	p.PointerMove(10, 10)
	p.PointerMove(40, 40)

	if !p.IsEmpty() {
		t.Fatal("vurus baslamadan hareket cizmemeli")
	}
}

func TestClearResetsSurface(t *testing.T) {
	p := NewPad(50, 50)

	p.PointerDown(5, 5)
	p.PointerMove(30, 30)
	p.PointerUp()
	p.Clear()

	if !p.IsEmpty() {
		t.Fatal("Clear yuzeyi bosaltmali")
	}

	data, err := p.ExportPNG()
	if err != nil {
		t.Fatalf("export hatasi: %v", err)
	}
	blank, err := NewPad(50, 50).ExportPNG()
	if err != nil {
		t.Fatalf("export hatasi: %v", err)
	}
	if !bytes.Equal(data, blank) {
		t.Fatal("temizlenen yuzey bos yuzeyle ayni kodlanmali")
	}
}

func TestOutOfBoundsPointsAreClipped(t *testing.T) {
	p := NewPad(20, 20)

	p.PointerDown(-5, -5)
	p.PointerMove(25, 25)
	p.PointerUp()

	if _, err := p.ExportPNG(); err != nil {
		t.Fatalf("sinir disi cizim export'u bozmamali: %v", err)
	}
}
