package adapters

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

const (
	minPhotoBytes = 100
	maxPhotoBytes = 10 * 1024 * 1024
	minFaceSide   = 50

	// Mean luminance above this is classified as female by the placeholder
	// heuristic below.
	brightnessThreshold = 150.0
)

var validPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// brightnessFaceAnalyzer is a stand-in for a real face recognition service.
// It validates the upload, then guesses gender from mean image brightness.
// Only the FaceAnalysis shape it produces is a contract; the arithmetic is a
// placeholder behind the port.
type brightnessFaceAnalyzer struct {
	logger outbound.LoggerPort
}

func NewBrightnessFaceAnalyzer(logger outbound.LoggerPort) outbound.FaceAnalyzerPort {
	return &brightnessFaceAnalyzer{
		logger: logger,
	}
}

func (a *brightnessFaceAnalyzer) Analyze(fileName string, content []byte) domain.FaceAnalysis {
	noFace := domain.FaceAnalysis{Gender: domain.GenderUnknown}

	if len(content) < minPhotoBytes || len(content) > maxPhotoBytes {
		return noFace
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !validPhotoExtensions[ext] {
		return noFace
	}

	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to decode uploaded photo", map[string]interface{}{
			"fileName": fileName,
		})
		return noFace
	}

	bounds := img.Bounds()
	if bounds.Dx() <= minFaceSide || bounds.Dy() <= minFaceSide {
		return noFace
	}

	if meanBrightness(img) > brightnessThreshold {
		return domain.FaceAnalysis{
			FaceDetected: true,
			Gender:       domain.GenderFemale,
			Age:          20 + rand.Intn(20),
			Confidence:   0.7,
		}
	}
	return domain.FaceAnalysis{
		FaceDetected: true,
		Gender:       domain.GenderMale,
		Age:          25 + rand.Intn(30),
		Confidence:   0.7,
	}
}

// meanBrightness samples every tenth pixel and averages the luminance
// (0.299r + 0.587g + 0.114b) on a 0..255 scale.
func meanBrightness(img image.Image) float64 {
	bounds := img.Bounds()
	totalBrightness := 0.0
	pixelCount := 0

	index := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if index%10 == 0 {
				r, g, b, _ := img.At(x, y).RGBA()
				brightness := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
				totalBrightness += brightness
				pixelCount++
			}
			index++
		}
	}

	if pixelCount == 0 {
		return 127
	}
	return totalBrightness / float64(pixelCount)
}
