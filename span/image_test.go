package span

import (
	"errors"
	"image"
	"testing"
)

func intp(v int) *int { return &v }

func TestPlacement(t *testing.T) {
	tests := []struct {
		name          string
		opts          imageOptions
		size          image.Point
		conv          UnitConverter
		want          image.Rectangle
		wantIntrinsic bool
		wantErr       bool
	}{
		{
			name:          "nothing requested",
			size:          image.Pt(32, 16),
			conv:          Density(2),
			want:          image.Rect(0, 0, 32, 16),
			wantIntrinsic: true,
		},
		{
			name:          "margins alone are ignored",
			opts:          imageOptions{marginStart: 6, marginTop: 2},
			size:          image.Pt(32, 16),
			conv:          Density(1),
			want:          image.Rect(0, 0, 32, 16),
			wantIntrinsic: true,
		},
		{
			name: "both given used as is",
			opts: imageOptions{width: intp(20), height: intp(20)},
			size: image.Pt(32, 16),
			conv: Density(1),
			want: image.Rect(0, 0, 20, 20),
		},
		{
			name: "width derives height",
			opts: imageOptions{width: intp(10)},
			size: image.Pt(32, 16),
			conv: Density(1),
			want: image.Rect(0, 0, 10, 5),
		},
		{
			name: "height derives width without truncating the ratio",
			opts: imageOptions{height: intp(10)},
			size: image.Pt(15, 10),
			conv: Density(2),
			want: image.Rect(0, 0, 30, 20),
		},
		{
			name: "ratio keeps fractions until conversion",
			opts: imageOptions{width: intp(10)},
			size: image.Pt(4, 3),
			conv: Density(2),
			// h = 7.5, px(7.5) = 15
			want: image.Rect(0, 0, 20, 15),
		},
		{
			name: "dip margins",
			opts: imageOptions{width: intp(20), height: intp(20), marginStart: 6, marginTop: 2},
			size: image.Pt(64, 64),
			conv: Density(1.5),
			want: image.Rect(9, 3, 39, 33),
		},
		{
			name: "pixel units bypass the converter",
			opts: imageOptions{width: intp(20), height: intp(20), marginStart: 6, marginTop: 2, pixels: true},
			size: image.Pt(64, 64),
			conv: Density(3),
			want: image.Rect(6, 2, 26, 22),
		},
		{
			name:          "zero height requested",
			opts:          imageOptions{height: intp(0)},
			size:          image.Pt(16, 8),
			conv:          Density(1),
			want:          image.Rect(0, 0, 16, 8),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name:          "negative width requested",
			opts:          imageOptions{width: intp(-5), height: intp(5)},
			size:          image.Pt(16, 8),
			conv:          Density(1),
			want:          image.Rect(0, 0, 16, 8),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name:          "zero intrinsic height",
			opts:          imageOptions{width: intp(10)},
			size:          image.Pt(16, 0),
			conv:          Density(1),
			want:          image.Rect(0, 0, 16, 0),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name:          "zero intrinsic width",
			opts:          imageOptions{height: intp(10)},
			size:          image.Pt(0, 8),
			conv:          Density(1),
			want:          image.Rect(0, 0, 0, 8),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name:          "derived height below one pixel",
			opts:          imageOptions{width: intp(10)},
			size:          image.Pt(1000, 1),
			conv:          Density(1),
			want:          image.Rect(0, 0, 1000, 1),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name:          "small request at low density",
			opts:          imageOptions{width: intp(1), height: intp(1)},
			size:          image.Pt(8, 8),
			conv:          Density(0.5),
			want:          image.Rect(0, 0, 8, 8),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name:          "huge request with margin",
			opts:          imageOptions{width: intp(1 << 30), marginStart: 1 << 30},
			size:          image.Pt(8, 8),
			conv:          Density(1),
			want:          image.Rect(0, 0, 8, 8),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name:          "huge pixel request",
			opts:          imageOptions{width: intp(1 << 30), height: intp(4), pixels: true},
			size:          image.Pt(8, 8),
			conv:          Density(1),
			want:          image.Rect(0, 0, 8, 8),
			wantIntrinsic: true,
			wantErr:       true,
		},
		{
			name: "zero intrinsic size with both requested",
			opts: imageOptions{width: intp(4), height: intp(4)},
			size: image.Pt(0, 0),
			conv: Density(1),
			want: image.Rect(0, 0, 4, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, intrinsic, err := tt.opts.placement(tt.size, tt.conv)
			if tt.wantErr != (err != nil) {
				t.Fatalf("placement() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrDegenerateImageDimensions) {
				t.Errorf("placement() error = %v, want ErrDegenerateImageDimensions", err)
			}
			if got != tt.want {
				t.Errorf("placement() = %v, want %v", got, tt.want)
			}
			if intrinsic != tt.wantIntrinsic {
				t.Errorf("placement() intrinsic = %v, want %v", intrinsic, tt.wantIntrinsic)
			}
		})
	}
}

func TestDensityToPixels(t *testing.T) {
	tests := []struct {
		d    Density
		dip  float64
		want int
	}{
		{1, 20, 20},
		{2, 20, 40},
		{1.5, 7, 10},
		{2.75, 3, 8},
		{0.5, 3, 1},
	}
	for _, tt := range tests {
		if got := tt.d.ToPixels(tt.dip); got != tt.want {
			t.Errorf("Density(%g).ToPixels(%g) = %d, want %d", float64(tt.d), tt.dip, got, tt.want)
		}
	}
}
