package ocr

import (
	"image"
	"image/color"
	"math"
)

// Preprocessing constants tuned for noisy document scans.
const (
	contrastFactor  = 1.2
	sharpnessFactor = 1.1

	bilateralRadius = 3 // 7x7 window
	bilateralSigma  = 50.0

	thresholdBlock = 31
	thresholdC     = 7
)

// Preprocess applies the fixed enhancement chain: 3-channel color,
// contrast and sharpness boost, grayscale, edge-preserving bilateral
// smoothing, then adaptive Gaussian thresholding to a binary image.
// The steps are generic and recognizer-agnostic; they improve
// recognition on low-quality scans regardless of backend.
func Preprocess(img image.Image) image.Image {
	rgba := toRGBA(img)
	adjustContrast(rgba, contrastFactor)
	rgba = sharpen(rgba, sharpnessFactor)
	gray := toGray(rgba)
	gray = bilateralFilter(gray, bilateralRadius, bilateralSigma)
	return adaptiveThreshold(gray, thresholdBlock, thresholdC)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		out := image.NewRGBA(rgba.Bounds())
		copy(out.Pix, rgba.Pix)
		return out
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// adjustContrast scales channel distance from mid-gray in place.
func adjustContrast(img *image.RGBA, factor float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(img.Pix[i+c])
			img.Pix[i+c] = clampByte(128 + (v-128)*factor)
		}
	}
}

// sharpen blends the image away from a 3x3 box smoothing of itself.
// factor 1 is identity, above 1 sharpens.
func sharpen(img *image.RGBA, factor float64) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	copy(out.Pix, img.Pix)
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			for c := 0; c < 3; c++ {
				var sum float64
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						sum += float64(img.Pix[img.PixOffset(x+dx, y+dy)+c])
					}
				}
				smooth := sum / 9
				orig := float64(img.Pix[img.PixOffset(x, y)+c])
				out.Pix[out.PixOffset(x, y)+c] = clampByte(smooth + (orig-smooth)*factor)
			}
			out.Pix[out.PixOffset(x, y)+3] = 255
		}
	}
	return out
}

func toGray(img *image.RGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return out
}

// bilateralFilter smooths while preserving edges: each pixel becomes a
// weighted mean of its window, with weights falling off by spatial
// distance and by intensity difference.
func bilateralFilter(img *image.Gray, radius int, sigma float64) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	twoSigmaSq := 2 * sigma * sigma

	// Spatial weights are fixed per offset; precompute them.
	size := 2*radius + 1
	spatial := make([]float64, size*size)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*size+(dx+radius)] = math.Exp(-d2 / twoSigmaSq)
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			center := float64(img.GrayAt(x, y).Y)
			var num, den float64
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := clampInt(x+dx, b.Min.X, b.Max.X-1), clampInt(y+dy, b.Min.Y, b.Max.Y-1)
					v := float64(img.GrayAt(nx, ny).Y)
					diff := v - center
					w := spatial[(dy+radius)*size+(dx+radius)] * math.Exp(-(diff*diff)/twoSigmaSq)
					num += w * v
					den += w
				}
			}
			out.SetGray(x, y, color.Gray{Y: clampByte(num / den)})
		}
	}
	return out
}

// adaptiveThreshold binarizes against a Gaussian-weighted local mean:
// pixels above (localMean - c) go white, the rest black.
func adaptiveThreshold(img *image.Gray, block, c int) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	radius := block / 2

	// Gaussian kernel sigma for the block size, then two separable
	// passes to get the weighted local mean.
	sigma := 0.3*(float64(block-1)*0.5-1) + 0.8
	kernel := make([]float64, block)
	var ksum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		ksum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= ksum
	}

	w, h := b.Dx(), b.Dy()
	tmp := make([]float64, w*h)
	mean := make([]float64, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sx := clampInt(x+k, 0, w-1)
				sum += kernel[k+radius] * float64(img.GrayAt(b.Min.X+sx, b.Min.Y+y).Y)
			}
			tmp[y*w+x] = sum
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sy := clampInt(y+k, 0, h-1)
				sum += kernel[k+radius] * tmp[sy*w+x]
			}
			mean[y*w+x] = sum
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if v > mean[y*w+x]-float64(c) {
				out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: 255})
			} else {
				out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: 0})
			}
		}
	}
	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
