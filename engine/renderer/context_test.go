package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestContextAccessors(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(30), 4.0/3.0, 3.0, 10.0)
	ctx := NewContext(ViewportSize{Width: 1024, Height: 768}, proj, 0.016)

	if ctx.Width() != 1024 || ctx.Height() != 768 {
		t.Fatalf("viewport = %dx%d, want 1024x768", ctx.Width(), ctx.Height())
	}
	if ctx.Viewport() != (ViewportSize{Width: 1024, Height: 768}) {
		t.Fatalf("Viewport() = %+v", ctx.Viewport())
	}
	if ctx.Projection() != proj {
		t.Fatal("Projection() does not round-trip")
	}
	if ctx.DeltaTime() != 0.016 {
		t.Fatalf("DeltaTime() = %v, want 0.016", ctx.DeltaTime())
	}
	if ctx.FrameNumber() != 0 {
		t.Fatalf("FrameNumber() = %d, want 0 for a fresh context", ctx.FrameNumber())
	}
}

func TestContextWithFrameNumberCopies(t *testing.T) {
	ctx := NewContext(ViewportSize{Width: 800, Height: 600}, mgl32.Ident4(), 0)

	next := ctx.WithFrameNumber(42)
	if next.FrameNumber() != 42 {
		t.Fatalf("derived FrameNumber() = %d, want 42", next.FrameNumber())
	}
	if ctx.FrameNumber() != 0 {
		t.Fatalf("original context mutated: FrameNumber() = %d", ctx.FrameNumber())
	}
	if next.Width() != ctx.Width() || next.Projection() != ctx.Projection() {
		t.Fatal("derived context lost unrelated fields")
	}
}

func TestContextWithDeltaTimeCopies(t *testing.T) {
	ctx := NewContext(ViewportSize{Width: 800, Height: 600}, mgl32.Ident4(), 0.016).WithFrameNumber(7)

	next := ctx.WithDeltaTime(0.033)
	if next.DeltaTime() != 0.033 {
		t.Fatalf("derived DeltaTime() = %v, want 0.033", next.DeltaTime())
	}
	if ctx.DeltaTime() != 0.016 {
		t.Fatalf("original context mutated: DeltaTime() = %v", ctx.DeltaTime())
	}
	if next.FrameNumber() != 7 {
		t.Fatalf("derived context lost the frame number: %d", next.FrameNumber())
	}
}
