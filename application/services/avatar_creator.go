package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

type avatarCreator struct {
	logger         outbound.LoggerPort
	userStore      outbound.UserStorePort
	photoStore     outbound.PhotoStorePort
	faceAnalyzer   outbound.FaceAnalyzerPort
	nameClassifier outbound.NameClassifierPort
	registrar      outbound.AvatarRegistrarPort
}

func NewAvatarCreator(logger outbound.LoggerPort, userStore outbound.UserStorePort,
	photoStore outbound.PhotoStorePort, faceAnalyzer outbound.FaceAnalyzerPort,
	nameClassifier outbound.NameClassifierPort, registrar outbound.AvatarRegistrarPort) inbound.AvatarCreatorPort {
	return &avatarCreator{
		logger:         logger,
		userStore:      userStore,
		photoStore:     photoStore,
		faceAnalyzer:   faceAnalyzer,
		nameClassifier: nameClassifier,
		registrar:      registrar,
	}
}

// Create analyzes the user's photo once, registers it with the external video
// API when a credential exists, and caches the outcome on the user record.
// Registrar failure is tolerated: the photo itself then serves as the avatar.
func (a *avatarCreator) Create(ctx context.Context, params inbound.CreateAvatarParams) (*inbound.CreateAvatarResult, error) {
	user, err := a.userStore.Find(ctx, params.Email)
	if err != nil {
		return nil, err
	}

	photoPath := user.PhotoPath
	faceDetails := domain.FaceAnalysis{Gender: domain.GenderUnknown}

	if params.Photo != nil {
		stored, err := a.photoStore.Save(ctx, outbound.SavePhotoParams{
			FileName:    params.Photo.FileName,
			ContentType: params.Photo.ContentType,
			Content:     params.Photo.Content,
		})
		if err != nil {
			return nil, err
		}
		photoPath = stored
		faceDetails = a.faceAnalyzer.Analyze(params.Photo.FileName, params.Photo.Content)
		a.logger.InfoWithFields("Face analysis completed", map[string]interface{}{
			"faceDetected": faceDetails.FaceDetected,
			"gender":       faceDetails.Gender,
			"confidence":   faceDetails.Confidence,
		})
	}

	if photoPath == "" {
		return nil, inbound.ErrNoPhoto
	}

	gender := faceDetails.Gender
	if gender == domain.GenderUnknown {
		gender = a.nameClassifier.Classify(user.Name)
	}

	avatarURL := absolutePhotoURL(photoPath, params.PublicBaseURL)
	didAvatarID := ""

	if a.registrar.Available() {
		registered, err := a.registrar.Register(ctx, outbound.RegisterAvatarParams{
			UserName: user.Name,
			ImageURL: avatarURL,
		})
		if err != nil {
			a.logger.ErrorWithFields(err, "Avatar registration failed, keeping photo as avatar", map[string]interface{}{
				"email": params.Email,
			})
		} else {
			didAvatarID = registered.ID
			if registered.URL != "" {
				avatarURL = registered.URL
			}
		}
	}

	now := time.Now()
	avatarData := domain.AvatarData{
		AvatarURL:   avatarURL,
		FaceDetails: faceDetails,
		Gender:      gender,
		DIDAvatarID: didAvatarID,
		CreatedAt:   now,
		LastUpdated: now,
		Version:     "2.0",
	}
	encoded, err := json.Marshal(avatarData)
	if err != nil {
		return nil, err
	}

	user.PhotoPath = photoPath
	user.AvatarURL = avatarURL
	user.AvatarData = string(encoded)
	user.AvatarGeneratedAt = &now

	if err := a.userStore.Update(ctx, *user); err != nil {
		return nil, err
	}

	return &inbound.CreateAvatarResult{
		AvatarURL:   avatarURL,
		FaceDetails: faceDetails,
		Gender:      gender,
	}, nil
}

// absolutePhotoURL resolves stored /uploads paths against the request's public
// base URL. Locations that are already absolute pass through untouched.
func absolutePhotoURL(location, baseURL string) string {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return location
	}
	return strings.TrimSuffix(baseURL, "/") + location
}
