package frameless

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointFromLParam(t *testing.T) {
	tests := []struct {
		lParam uintptr
		want   Point
	}{
		{0x00000000, Point{0, 0}},
		{0x00320032, Point{50, 50}},
		{0x0000ffff, Point{-1, 0}},
		{0xfffe0005, Point{5, -2}},
		{0x80007fff, Point{32767, -32768}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PointFromLParam(tt.lParam), "%#x", tt.lParam)
	}
}

func TestMakeLParam(t *testing.T) {
	for _, p := range []Point{{0, 0}, {1, 2}, {-1, -1}, {-300, 200}, {32767, -32768}} {
		assert.Equal(t, p, PointFromLParam(MakeLParam(p.X, p.Y)))
	}
	assert.Equal(t, uintptr(0x00320032), MakeLParam(50, 50))
}

func TestHitTestString(t *testing.T) {
	assert.Equal(t, "HTCAPTION", HTCAPTION.String())
	assert.Equal(t, "HTERROR", HTERROR.String())
	assert.Equal(t, "HitTest(99)", HitTest(99).String())
}

func TestHitTestResultSignExtends(t *testing.T) {
	assert.Equal(t, HTERROR, hitTestFromResult(HTERROR.result()))
	assert.Equal(t, HTTRANSPARENT, hitTestFromResult(^uintptr(0)))
}
