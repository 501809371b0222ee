package services

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

const bcryptCost = 10
const minPasswordLength = 6

var gmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// TokenIssuer signs a session token for a logged-in user.
type TokenIssuer interface {
	IssueToken(email, name string) (string, error)
}

type accountService struct {
	logger       outbound.LoggerPort
	userStore    outbound.UserStorePort
	photoStore   outbound.PhotoStorePort
	faceAnalyzer outbound.FaceAnalyzerPort
	dispatcher   outbound.TaskDispatcher
	tokens       TokenIssuer
}

func NewAccountService(logger outbound.LoggerPort, userStore outbound.UserStorePort,
	photoStore outbound.PhotoStorePort, faceAnalyzer outbound.FaceAnalyzerPort,
	dispatcher outbound.TaskDispatcher, tokens TokenIssuer) inbound.AccountServicePort {
	return &accountService{
		logger:       logger,
		userStore:    userStore,
		photoStore:   photoStore,
		faceAnalyzer: faceAnalyzer,
		dispatcher:   dispatcher,
		tokens:       tokens,
	}
}

func (s *accountService) Register(ctx context.Context, params inbound.RegisterParams) (string, error) {
	if !gmailRegexp.MatchString(params.Email) {
		return "", inbound.ErrInvalidEmailDomain
	}

	photoPath := ""
	if params.Photo != nil {
		// Registration is lenient about face detection: a miss is logged but
		// does not block the signup.
		analysis := s.faceAnalyzer.Analyze(params.Photo.FileName, params.Photo.Content)
		if !analysis.FaceDetected {
			s.logger.Warn("Uploaded photo may not contain a recognizable face")
		}

		stored, err := s.photoStore.Save(ctx, outbound.SavePhotoParams{
			FileName:    params.Photo.FileName,
			ContentType: params.Photo.ContentType,
			Content:     params.Photo.Content,
		})
		if err != nil {
			return "", err
		}
		photoPath = stored
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		s.discardPhoto(photoPath)
		return "", err
	}

	gender := domain.GenderPreference(params.Gender)
	if gender == "" {
		gender = domain.PreferenceUnset
	}

	err = s.userStore.Insert(ctx, domain.User{
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		PasswordHash: string(hashed),
		PhotoPath:    photoPath,
		Gender:       gender,
	})
	if err != nil {
		s.discardPhoto(photoPath)
		return "", err
	}

	return photoPath, nil
}

func (s *accountService) Login(ctx context.Context, params inbound.LoginParams) (*inbound.LoginResult, error) {
	user, err := s.userStore.Find(ctx, params.Email)
	if err != nil {
		return nil, inbound.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)); err != nil {
		return nil, inbound.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.Email, user.Name)
	if err != nil {
		s.logger.Error(err, "Failed to issue session token")
		return nil, err
	}

	return &inbound.LoginResult{
		Profile: inbound.Profile{
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.Phone,
			PhotoPath: user.PhotoPath,
			AvatarURL: user.AvatarURL,
			Gender:    string(user.Gender),
		},
		Token: token,
	}, nil
}

func (s *accountService) ChangePassword(ctx context.Context, params inbound.ChangePasswordParams) error {
	if len(params.NewPassword) < minPasswordLength {
		return inbound.ErrPasswordTooShort
	}

	user, err := s.userStore.Find(ctx, params.Email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.CurrentPassword)); err != nil {
		return inbound.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashed)
	return s.userStore.Update(ctx, *user)
}

func (s *accountService) UpdatePhoto(ctx context.Context, params inbound.UpdatePhotoParams) (string, error) {
	// Unlike registration, a photo replacement must actually contain a face.
	analysis := s.faceAnalyzer.Analyze(params.Photo.FileName, params.Photo.Content)
	if !analysis.FaceDetected {
		return "", inbound.ErrNoFaceInPhoto
	}

	user, err := s.userStore.Find(ctx, params.Email)
	if err != nil {
		return "", err
	}

	photoPath, err := s.photoStore.Save(ctx, outbound.SavePhotoParams{
		FileName:    params.Photo.FileName,
		ContentType: params.Photo.ContentType,
		Content:     params.Photo.Content,
	})
	if err != nil {
		return "", err
	}

	oldPhoto := user.PhotoPath
	user.PhotoPath = photoPath
	if err := s.userStore.Update(ctx, *user); err != nil {
		s.discardPhoto(photoPath)
		return "", err
	}

	s.discardPhoto(oldPhoto)
	return photoPath, nil
}

func (s *accountService) ResetPhoto(ctx context.Context, email string) error {
	user, err := s.userStore.Find(ctx, email)
	if err != nil {
		return err
	}

	oldPhoto := user.PhotoPath
	user.PhotoPath = ""
	if err := s.userStore.Update(ctx, *user); err != nil {
		return err
	}

	s.discardPhoto(oldPhoto)
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, email string) error {
	user, err := s.userStore.Find(ctx, email)
	if err != nil {
		return err
	}

	if err := s.userStore.Delete(ctx, email); err != nil {
		return err
	}

	s.discardPhoto(user.PhotoPath)
	return nil
}

// discardPhoto removes an orphaned upload in the background. Failures are
// logged only: a leaked file never fails the request that triggered cleanup.
func (s *accountService) discardPhoto(location string) {
	if location == "" {
		return
	}

	err := s.dispatcher.Submit(func() {
		if err := s.photoStore.Delete(context.Background(), location); err != nil {
			s.logger.ErrorWithFields(err, "Failed to delete stored photo", map[string]interface{}{
				"location": location,
			})
		}
	})
	if err != nil {
		s.logger.Error(err, "Failed to submit photo cleanup task")
	}
}
