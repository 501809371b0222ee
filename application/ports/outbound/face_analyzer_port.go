package outbound

import "github.com/Nikshey/TWINSKILL/domain"

// FaceAnalyzerPort inspects an uploaded photo once, at avatar-creation time.
// It never fails: anything unusable comes back as a no-face result.
type FaceAnalyzerPort interface {
	Analyze(fileName string, content []byte) domain.FaceAnalysis
}
