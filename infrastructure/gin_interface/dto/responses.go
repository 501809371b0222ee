package dto

import "github.com/Nikshey/TWINSKILL/domain"

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterResponse struct {
	Message   string `json:"message"`
	PhotoPath string `json:"photoPath,omitempty"`
}

type UserResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	PhotoPath string `json:"photoPath,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Gender    string `json:"gender"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type HealthResponse struct {
	DBState string `json:"dbState"`
}

type CreateAvatarResponse struct {
	Message     string              `json:"message"`
	AvatarURL   string              `json:"avatarUrl"`
	FaceDetails domain.FaceAnalysis `json:"faceDetails"`
	Gender      domain.GenderLabel  `json:"gender"`
}

type VoiceSettingsResponse struct {
	VoiceURI string  `json:"voiceURI"`
	Name     string  `json:"name"`
	Pitch    float64 `json:"pitch"`
	Rate     float64 `json:"rate"`
	Volume   float64 `json:"volume"`
}

// TalkResponse carries either a real video or the fallback payload. The field
// names are a contract with the frontend renderer.
type TalkResponse struct {
	Message       string                `json:"message,omitempty"`
	VideoURL      string                `json:"videoUrl,omitempty"`
	Text          string                `json:"text,omitempty"`
	ImageURL      string                `json:"imageUrl,omitempty"`
	Gender        domain.GenderLabel    `json:"gender"`
	VoiceSettings VoiceSettingsResponse `json:"voiceSettings"`
	FaceDetails   domain.FaceAnalysis   `json:"faceDetails"`
	AnimationData *domain.AnimationHint `json:"animationData,omitempty"`
}

func NewTalkResponse(result domain.TalkResult) TalkResponse {
	response := TalkResponse{
		Gender: result.Persona.Gender,
		VoiceSettings: VoiceSettingsResponse{
			VoiceURI: result.Persona.VoiceURI,
			Name:     result.Persona.VoiceURI,
			Pitch:    result.Persona.Pitch,
			Rate:     result.Persona.Rate,
			Volume:   result.Persona.Volume,
		},
		FaceDetails: result.FaceDetails,
	}

	if result.Kind == domain.TalkResultVideo {
		response.VideoURL = result.VideoURL
		return response
	}

	response.Message = "Fallback response"
	response.Text = result.Text
	response.ImageURL = result.ImageURL
	response.AnimationData = result.Animation
	return response
}
