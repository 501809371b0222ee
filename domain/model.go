package domain

import "time"

type GenderLabel string

const (
	GenderMale    GenderLabel = "male"
	GenderFemale  GenderLabel = "female"
	GenderUnknown GenderLabel = "unknown"
)

// GenderPreference is what the user picked at registration. Unlike GenderLabel
// it carries the "rather not say" states that never drive voice selection.
type GenderPreference string

const (
	PreferenceMale   GenderPreference = "male"
	PreferenceFemale GenderPreference = "female"
	PreferenceOther  GenderPreference = "other"
	PreferenceUnset  GenderPreference = "prefer-not-to-say"
)

// Label maps a preference onto a gender label. Other and prefer-not-to-say
// carry no male/female label and map to unknown.
func (p GenderPreference) Label() GenderLabel {
	switch p {
	case PreferenceMale:
		return GenderMale
	case PreferenceFemale:
		return GenderFemale
	default:
		return GenderUnknown
	}
}

type User struct {
	Name              string
	Email             string
	Phone             string
	PasswordHash      string
	PhotoPath         string
	AvatarURL         string
	AvatarData        string // JSON-encoded AvatarData, opaque to the stores
	AvatarGeneratedAt *time.Time
	Gender            GenderPreference
}

// FaceAnalysis is produced once at avatar-creation time and cached on the user
// record. Talk requests only ever read it.
type FaceAnalysis struct {
	FaceDetected bool        `json:"faceDetected"`
	Gender       GenderLabel `json:"gender"`
	Age          int         `json:"age"`
	Confidence   float64     `json:"confidence"`
}

// AvatarData is the customization blob persisted on the user after avatar
// creation.
type AvatarData struct {
	AvatarURL   string       `json:"avatarUrl"`
	FaceDetails FaceAnalysis `json:"faceDetails"`
	Gender      GenderLabel  `json:"gender"`
	DIDAvatarID string       `json:"didAvatarId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	LastUpdated time.Time    `json:"lastUpdated"`
	Version     string       `json:"version"`
}

// Persona is the resolved gender/voice configuration driving speech synthesis.
// VoiceID selects the provider voice for video generation, VoiceURI the
// browser-side synthesis voice used by the fallback renderer.
type Persona struct {
	Gender   GenderLabel
	VoiceID  string
	VoiceURI string
	Pitch    float64
	Rate     float64
	Volume   float64
}

type TalkJobStatus string

const (
	TalkJobSubmitted TalkJobStatus = "submitted"
	TalkJobPolling   TalkJobStatus = "polling"
	TalkJobDone      TalkJobStatus = "done"
	TalkJobError     TalkJobStatus = "error"
	TalkJobTimedOut  TalkJobStatus = "timed_out"
)

// TalkJob tracks one external generation task. It is owned by the single
// SubmitAndAwait call that created it and discarded on a terminal status.
type TalkJob struct {
	ID          string
	Status      TalkJobStatus
	ResultURL   string
	SubmittedAt time.Time
}

// AnimationHint drives the frontend renderer when no real video is available.
// The constants baked into it are a compatibility contract with that renderer.
type AnimationHint struct {
	DurationMs           int      `json:"duration"`
	Emotions             []string `json:"emotions"`
	LipMovementIntensity float64  `json:"lipMovementIntensity"`
	HeadMovement         bool     `json:"headMovement"`
	BlinkFrequency       float64  `json:"blinkFrequency"`
}

type TalkResultKind string

const (
	TalkResultVideo    TalkResultKind = "video"
	TalkResultFallback TalkResultKind = "fallback"
)

// TalkResult is what a talk request always produces, real video or not.
type TalkResult struct {
	Kind        TalkResultKind
	VideoURL    string
	Text        string
	ImageURL    string
	Persona     Persona
	FaceDetails FaceAnalysis
	Animation   *AnimationHint
}
