package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/config"
)

type didCreateAvatarRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Visibility  string   `json:"visibility"`
	Tags        []string `json:"tags"`
}

type didCreateAvatarResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type didAvatarRegistrar struct {
	ContentFetcher
	logger    outbound.LoggerPort
	didConfig *config.DIDConfig
}

func NewDIDAvatarRegistrar(contentFetcher ContentFetcher, didConfig *config.DIDConfig,
	logger outbound.LoggerPort) outbound.AvatarRegistrarPort {
	return &didAvatarRegistrar{
		ContentFetcher: contentFetcher,
		logger:         logger,
		didConfig:      didConfig,
	}
}

func (r *didAvatarRegistrar) Available() bool {
	return r.didConfig.ApiKey != ""
}

func (r *didAvatarRegistrar) Register(ctx context.Context, params outbound.RegisterAvatarParams) (*outbound.RegisterAvatarResult, error) {
	reqBody := didCreateAvatarRequest{
		Name:        fmt.Sprintf("%s's Avatar", params.UserName),
		Description: "Personal AI tutor for Twinskill",
		ImageURL:    params.ImageURL,
		Visibility:  "private",
		Tags:        []string{"twinskill", "ai-tutor"},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.didConfig.ApiUrl+"/avatars", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(r.didConfig.ApiKey)))

	rawRes, err := r.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var created didCreateAvatarResponse
	if err := json.Unmarshal(rawRes, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("avatar creation response carried no id")
	}

	r.logger.InfoWithFields("Avatar registered with D-ID", map[string]interface{}{
		"avatarId": created.ID,
	})

	return &outbound.RegisterAvatarResult{
		ID:  created.ID,
		URL: created.URL,
	}, nil
}
