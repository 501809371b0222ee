package services

import (
	"context"
	"time"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

// syncDispatcher runs submitted tasks inline so tests observe their side
// effects immediately.
type syncDispatcher struct{}

func (syncDispatcher) Submit(task func()) error {
	task()
	return nil
}

type stubUserStore struct {
	users     map[string]domain.User
	findErr   error
	insertErr error
	updateErr error
	deleteErr error
}

func newStubUserStore(users ...domain.User) *stubUserStore {
	store := &stubUserStore{users: make(map[string]domain.User)}
	for _, user := range users {
		store.users[user.Email] = user
	}
	return store
}

func (s *stubUserStore) Find(_ context.Context, email string) (*domain.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	user, ok := s.users[email]
	if !ok {
		return nil, outbound.ErrUserNotFound
	}
	return &user, nil
}

func (s *stubUserStore) Insert(_ context.Context, user domain.User) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	if _, ok := s.users[user.Email]; ok {
		return outbound.ErrEmailTaken
	}
	s.users[user.Email] = user
	return nil
}

func (s *stubUserStore) Update(_ context.Context, user domain.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.users[user.Email]; !ok {
		return outbound.ErrUserNotFound
	}
	s.users[user.Email] = user
	return nil
}

func (s *stubUserStore) Delete(_ context.Context, email string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.users[email]; !ok {
		return outbound.ErrUserNotFound
	}
	delete(s.users, email)
	return nil
}

func (s *stubUserStore) State() string {
	return "stub"
}

type stubPhotoStore struct {
	location string
	saveErr  error
	saved    []outbound.SavePhotoParams
	deleted  []string
}

func (s *stubPhotoStore) Save(_ context.Context, params outbound.SavePhotoParams) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, params)
	if s.location != "" {
		return s.location, nil
	}
	return "/uploads/" + params.FileName, nil
}

func (s *stubPhotoStore) Delete(_ context.Context, location string) error {
	s.deleted = append(s.deleted, location)
	return nil
}

type stubFaceAnalyzer struct {
	result domain.FaceAnalysis
}

func (s stubFaceAnalyzer) Analyze(string, []byte) domain.FaceAnalysis {
	return s.result
}

type stubNameClassifier struct {
	label domain.GenderLabel
}

func (s stubNameClassifier) Classify(string) domain.GenderLabel {
	return s.label
}

type stubTalkGenerator struct {
	available  bool
	videoURL   string
	err        error
	calls      int
	lastParams outbound.SubmitTalkParams
	lastBudget time.Duration
}

func (s *stubTalkGenerator) Available() bool {
	return s.available
}

func (s *stubTalkGenerator) SubmitAndAwait(_ context.Context, params outbound.SubmitTalkParams,
	budget time.Duration) (string, error) {
	s.calls++
	s.lastParams = params
	s.lastBudget = budget
	if s.err != nil {
		return "", s.err
	}
	return s.videoURL, nil
}

type stubRegistrar struct {
	available  bool
	result     *outbound.RegisterAvatarResult
	err        error
	calls      int
	lastParams outbound.RegisterAvatarParams
}

func (s *stubRegistrar) Available() bool {
	return s.available
}

func (s *stubRegistrar) Register(_ context.Context, params outbound.RegisterAvatarParams) (*outbound.RegisterAvatarResult, error) {
	s.calls++
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubTokenIssuer struct {
	token string
	err   error
}

func (s stubTokenIssuer) IssueToken(string, string) (string, error) {
	return s.token, s.err
}
