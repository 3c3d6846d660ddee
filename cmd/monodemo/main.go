// Command monodemo exercises the mono display stack against the
// in-memory panel and saves a magnified preview.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/mono"
	"github.com/gogpu/mono/backend"
	"github.com/gogpu/mono/backend/memdisplay"
	"github.com/gogpu/mono/font"
	"github.com/gogpu/mono/present"
)

func main() {
	var (
		width    = flag.Int("width", 128, "panel width in pixels")
		height   = flag.Int("height", 64, "panel height in pixels")
		scale    = flag.Int("scale", 4, "preview magnification")
		output   = flag.String("output", "demo.png", "output file")
		contrast = flag.Int("contrast", 0x7F, "panel contrast (0-255)")
	)
	flag.Parse()

	// memdisplay registers itself on import; pick it through the registry
	// the way a real application would select a panel driver.
	display, ok := backend.MustDefault().(*memdisplay.Display)
	if !ok {
		log.Fatal("default backend is not the in-memory display")
	}
	p := present.New(display, present.Config{
		Width:         uint16(*width),
		Height:        uint16(*height),
		DirtyTracking: true,
	})
	if !p.Initialized() {
		log.Fatal("display failed to initialize")
	}
	if st := p.SetContrast(uint8(*contrast)); st != present.OK {
		log.Fatalf("SetContrast failed: %v", st)
	}

	s := p.Surface()
	drawShapesDemo(s)
	drawRasterOpDemo(s)
	drawTextDemo(s)

	if st := p.PresentFrame(present.ModeAuto); st != present.OK {
		log.Fatalf("present failed: %v", st)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, display.Preview(*scale)); err != nil {
		log.Fatalf("Failed to save PNG: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %dx preview)\n", *output, *width, *height, *scale)
}

func drawShapesDemo(s *mono.Surface) {
	b := s.Bounds()
	s.DrawRect(b, mono.White, mono.OpCopy)

	// Outline, fill and line primitives
	s.DrawCircle(mono.Pt(20, 16), 10, mono.White, mono.OpCopy)
	s.FillRect(mono.Rt(38, 8, 18, 16), mono.White, mono.OpCopy)
	s.DrawLine(mono.Pt(62, 24), mono.Pt(88, 8), mono.White, mono.OpCopy)
	s.DrawLine(mono.Pt(62, 8), mono.Pt(88, 24), mono.White, mono.OpCopy)
}

func drawRasterOpDemo(s *mono.Surface) {
	// Two overlapping fills: the XOR pass carves a hole where they meet
	s.FillRect(mono.Rt(96, 6, 20, 14), mono.White, mono.OpCopy)
	s.FillRect(mono.Rt(104, 10, 20, 14), mono.White, mono.OpXOR)
}

func drawTextDemo(s *mono.Surface) {
	f := font.Face7x13()
	s.DrawTextTopLeft(mono.Pt(6, 30), "hello, panel", mono.TextStyle{
		Font:  f,
		Color: mono.White,
	})
	s.DrawTextTopLeft(mono.Pt(6, 46), "2x", mono.TextStyle{
		Font:   f,
		Color:  mono.White,
		ScaleX: 2,
		ScaleY: 1,
	})
}
