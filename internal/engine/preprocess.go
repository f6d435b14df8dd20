package engine

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// InputSize is the spatial resolution expected by the vision encoder
// (ViT-base patch16).
const InputSize = 224

// Per-channel normalization used by the ViT image processor.
var (
	imageMean = [3]float32{0.5, 0.5, 0.5}
	imageStd  = [3]float32{0.5, 0.5, 0.5}
)

// PreprocessImage decodes raw image bytes (PNG, JPEG or GIF), resizes them to
// InputSize x InputSize with bilinear filtering and converts to a normalized
// NCHW float32 tensor.
func PreprocessImage(data []byte) (Tensor, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Tensor{}, fmt.Errorf("decode image: %w", err)
	}
	scaled := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	const plane = InputSize * InputSize
	out := make([]float32, 3*plane)
	for y := 0; y < InputSize; y++ {
		for x := 0; x < InputSize; x++ {
			off := scaled.PixOffset(x, y)
			idx := y*InputSize + x
			for c := 0; c < 3; c++ {
				v := float32(scaled.Pix[off+c]) / 255.0
				out[c*plane+idx] = (v - imageMean[c]) / imageStd[c]
			}
		}
	}
	return Tensor{Data: out, Dims: []int64{1, 3, InputSize, InputSize}}, nil
}
