package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

const DefaultTalkBudget = 60 * time.Second

const (
	fallbackMessageText = "I understand your question. Let me explain..."
	fallbackImageURL    = "https://cdn.discordapp.com/attachments/1127860890006409337/1127860923460689950/ai-avatar.png"
)

type talkOrchestrator struct {
	logger        outbound.LoggerPort
	userStore     outbound.UserStorePort
	voiceResolver inbound.VoiceResolverPort
	talkGenerator outbound.TalkVideoGeneratorPort
	budget        time.Duration
}

func NewTalkOrchestrator(logger outbound.LoggerPort, userStore outbound.UserStorePort,
	voiceResolver inbound.VoiceResolverPort, talkGenerator outbound.TalkVideoGeneratorPort) inbound.TalkOrchestratorPort {
	return &talkOrchestrator{
		logger:        logger,
		userStore:     userStore,
		voiceResolver: voiceResolver,
		talkGenerator: talkGenerator,
		budget:        DefaultTalkBudget,
	}
}

// Handle runs the full talk pipeline and recovers every failure into a
// fallback result. It never returns an error and never panics past this frame.
func (o *talkOrchestrator) Handle(ctx context.Context, params inbound.TalkParams) (result domain.TalkResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.ErrorWithFields(nil, "Talk pipeline panicked, serving static fallback", map[string]interface{}{
				"panic": r,
			})
			result = StaticFallbackResult()
		}
	}()

	persona, faceDetails := o.resolvePersona(ctx, params.UserEmail)

	if !o.talkGenerator.Available() {
		o.logger.Info("No video API credential configured, serving fallback")
		return o.fallbackResult(params, persona, faceDetails)
	}

	videoURL, err := o.talkGenerator.SubmitAndAwait(ctx, outbound.SubmitTalkParams{
		ImageURL: params.ImageURL,
		Text:     params.Text,
		VoiceID:  persona.VoiceID,
	}, o.budget)
	if err != nil {
		o.logger.ErrorWithFields(err, "Talk generation failed, serving fallback", map[string]interface{}{
			"imageUrl": params.ImageURL,
		})
		return o.fallbackResult(params, persona, faceDetails)
	}

	return domain.TalkResult{
		Kind:        domain.TalkResultVideo,
		VideoURL:    videoURL,
		Persona:     persona,
		FaceDetails: faceDetails,
	}
}

// resolvePersona gathers whatever signals the user record offers. A failed
// lookup is "no signals", not an error.
func (o *talkOrchestrator) resolvePersona(ctx context.Context, email string) (domain.Persona, domain.FaceAnalysis) {
	faceDetails := domain.FaceAnalysis{Gender: domain.GenderUnknown}
	resolveParams := inbound.ResolveVoiceParams{Preference: domain.PreferenceUnset}

	if email != "" {
		user, err := o.userStore.Find(ctx, email)
		if err != nil {
			o.logger.WarnWithFields("User lookup failed, resolving persona without profile signals", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		} else {
			resolveParams.Preference = user.Gender
			resolveParams.DisplayName = user.Name
			if user.AvatarData != "" {
				var avatarData domain.AvatarData
				if err := json.Unmarshal([]byte(user.AvatarData), &avatarData); err != nil {
					o.logger.Warn("Failed to parse cached avatar data, ignoring it")
				} else {
					faceDetails = avatarData.FaceDetails
					resolveParams.FaceAnalysis = &avatarData.FaceDetails
				}
			}
		}
	}

	return o.voiceResolver.Resolve(resolveParams), faceDetails
}

func (o *talkOrchestrator) fallbackResult(params inbound.TalkParams, persona domain.Persona,
	faceDetails domain.FaceAnalysis) domain.TalkResult {
	return domain.TalkResult{
		Kind:        domain.TalkResultFallback,
		Text:        params.Text,
		ImageURL:    params.ImageURL,
		Persona:     persona,
		FaceDetails: faceDetails,
		Animation:   fallbackAnimation(params.Text, persona),
	}
}

// fallbackAnimation derives the renderer hints from text length and persona.
// The constants are a compatibility contract with the frontend renderer.
func fallbackAnimation(text string, persona domain.Persona) *domain.AnimationHint {
	hint := &domain.AnimationHint{
		DurationMs:           len(text) * 100,
		Emotions:             []string{"happy", "thoughtful", "excited"},
		LipMovementIntensity: 1.0,
		HeadMovement:         true,
		BlinkFrequency:       0.5,
	}
	if persona.Gender == domain.GenderFemale {
		hint.LipMovementIntensity = 1.3
		hint.BlinkFrequency = 0.8
	}
	return hint
}

// StaticFallbackResult is the never-fails floor: a fixed placeholder response
// served when even the regular fallback cannot be built.
func StaticFallbackResult() domain.TalkResult {
	return domain.TalkResult{
		Kind:        domain.TalkResultFallback,
		Text:        fallbackMessageText,
		ImageURL:    fallbackImageURL,
		Persona:     PersonaFor(domain.GenderUnknown),
		FaceDetails: domain.FaceAnalysis{Gender: domain.GenderUnknown},
		Animation: &domain.AnimationHint{
			DurationMs:           2000,
			Emotions:             []string{"happy"},
			LipMovementIntensity: 1.0,
			HeadMovement:         false,
			BlinkFrequency:       0.3,
		},
	}
}
