package inbound

import "github.com/Nikshey/TWINSKILL/domain"

// ResolveVoiceParams carries the layered persona signals. Any of them may be
// absent; resolution always produces a concrete voice.
type ResolveVoiceParams struct {
	Preference   domain.GenderPreference
	FaceAnalysis *domain.FaceAnalysis
	DisplayName  string
}

type VoiceResolverPort interface {
	Resolve(params ResolveVoiceParams) domain.Persona
}
