package outbound

import "github.com/Nikshey/TWINSKILL/domain"

// NameClassifierPort guesses a gender label from a display name. It is the
// lowest-priority persona signal and a stand-in for a real classifier.
type NameClassifierPort interface {
	Classify(name string) domain.GenderLabel
}
