package services

import (
	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

// voiceTable maps every gender label to a concrete voice. The pitch/rate/volume
// constants are consumed by the frontend speech synthesis in fallback mode.
var voiceTable = map[domain.GenderLabel]domain.Persona{
	domain.GenderFemale: {
		Gender:   domain.GenderFemale,
		VoiceID:  "en-US-JennyNeural",
		VoiceURI: "Google UK English Female",
		Pitch:    1.2,
		Rate:     1.0,
		Volume:   1.0,
	},
	domain.GenderMale: {
		Gender:   domain.GenderMale,
		VoiceID:  "en-US-DavisNeural",
		VoiceURI: "Google UK English Male",
		Pitch:    0.8,
		Rate:     1.0,
		Volume:   1.0,
	},
	domain.GenderUnknown: {
		Gender:   domain.GenderUnknown,
		VoiceID:  "en-US-GuyNeural",
		VoiceURI: "Google US English",
		Pitch:    1.0,
		Rate:     1.0,
		Volume:   1.0,
	},
}

// PersonaFor returns the fixed persona for a gender label, falling back to the
// neutral voice for anything unrecognized.
func PersonaFor(gender domain.GenderLabel) domain.Persona {
	persona, ok := voiceTable[gender]
	if !ok {
		return voiceTable[domain.GenderUnknown]
	}
	return persona
}

type voiceProfileResolver struct {
	nameClassifier outbound.NameClassifierPort
}

func NewVoiceProfileResolver(nameClassifier outbound.NameClassifierPort) inbound.VoiceResolverPort {
	return &voiceProfileResolver{
		nameClassifier: nameClassifier,
	}
}

// Resolve layers the persona signals: explicit preference, then the cached
// face analysis, then the name heuristic. Any stated preference is terminal,
// "other" included; only prefer-not-to-say and an absent preference fall
// through to the detection layers. The result always carries a concrete voice.
func (r *voiceProfileResolver) Resolve(params inbound.ResolveVoiceParams) domain.Persona {
	switch params.Preference {
	case domain.PreferenceMale, domain.PreferenceFemale:
		return PersonaFor(params.Preference.Label())
	case domain.PreferenceOther:
		// The user chose neither voice; guessing one from the photo or the
		// name would override that choice.
		return PersonaFor(domain.GenderUnknown)
	}

	gender := domain.GenderUnknown
	if params.FaceAnalysis != nil {
		gender = params.FaceAnalysis.Gender
	}
	if gender == domain.GenderUnknown {
		gender = r.nameClassifier.Classify(params.DisplayName)
	}

	return PersonaFor(gender)
}
