package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/config"
	"github.com/Nikshey/TWINSKILL/domain"
)

const defaultPollInterval = 1500 * time.Millisecond

type didScript struct {
	Type     string           `json:"type"`
	Input    string           `json:"input"`
	Provider didVoiceProvider `json:"provider"`
}

type didVoiceProvider struct {
	Type    string `json:"type"`
	VoiceID string `json:"voice_id"`
}

type didAnimationConfig struct {
	Type      string  `json:"type"`
	Blend     bool    `json:"blend"`
	Intensity float64 `json:"intensity"`
	Smoothing float64 `json:"smoothing"`
}

type didTalkConfig struct {
	Stitch     bool               `json:"stitch"`
	Animation  didAnimationConfig `json:"animation"`
	Quality    string             `json:"quality"`
	FPS        int                `json:"fps"`
	Resolution string             `json:"resolution"`
}

type didCreateTalkRequest struct {
	SourceURL string        `json:"source_url"`
	Script    didScript     `json:"script"`
	Config    didTalkConfig `json:"config"`
}

type didCreateTalkResponse struct {
	ID string `json:"id"`
}

type didTalkStatusResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	ResultURL string `json:"result_url"`
}

type didTalkClient struct {
	ContentFetcher
	logger       outbound.LoggerPort
	didConfig    *config.DIDConfig
	pollInterval time.Duration
}

func NewDIDTalkClient(contentFetcher ContentFetcher, didConfig *config.DIDConfig,
	logger outbound.LoggerPort) outbound.TalkVideoGeneratorPort {
	return &didTalkClient{
		ContentFetcher: contentFetcher,
		logger:         logger,
		didConfig:      didConfig,
		pollInterval:   defaultPollInterval,
	}
}

func (c *didTalkClient) Available() bool {
	return c.didConfig.ApiKey != ""
}

// SubmitAndAwait creates one talk job and polls it to a terminal state. The
// loop is sequential with a fixed interval; a failed poll abandons the job
// instead of burning the remaining budget on retries.
func (c *didTalkClient) SubmitAndAwait(ctx context.Context, params outbound.SubmitTalkParams,
	budget time.Duration) (string, error) {
	job := domain.TalkJob{
		Status:      domain.TalkJobSubmitted,
		SubmittedAt: time.Now(),
	}

	id, err := c.submit(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", outbound.ErrSubmissionRejected, err)
	}

	job.ID = id
	job.Status = domain.TalkJobPolling
	c.logger.InfoWithFields("Talk job submitted", map[string]interface{}{
		"talkId":  job.ID,
		"voiceId": params.VoiceID,
	})

	// The budget covers polling only; submission latency is not deducted.
	deadline := time.Now().Add(budget)
	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			job.Status = domain.TalkJobError
			return "", fmt.Errorf("talk %s abandoned: %w", job.ID, ctx.Err())
		case <-timer.C:
		}

		status, err := c.poll(ctx, job.ID)
		if err != nil {
			job.Status = domain.TalkJobError
			return "", fmt.Errorf("%w: %v", outbound.ErrPollingError, err)
		}

		if status.ResultURL != "" {
			job.Status = domain.TalkJobDone
			job.ResultURL = status.ResultURL
			c.logger.InfoWithFields("Talk job completed", map[string]interface{}{
				"talkId":   job.ID,
				"videoUrl": job.ResultURL,
			})
			return job.ResultURL, nil
		}
		if status.Status == "error" {
			job.Status = domain.TalkJobError
			return "", fmt.Errorf("%w: talk %s", outbound.ErrGenerationError, job.ID)
		}

		timer.Reset(c.pollInterval)
	}

	job.Status = domain.TalkJobTimedOut
	return "", fmt.Errorf("%w: talk %s after %s", outbound.ErrTimedOut, job.ID, budget)
}

func (c *didTalkClient) submit(ctx context.Context, params outbound.SubmitTalkParams) (string, error) {
	reqBody := didCreateTalkRequest{
		SourceURL: params.ImageURL,
		Script: didScript{
			Type:  "text",
			Input: params.Text,
			Provider: didVoiceProvider{
				Type:    "microsoft",
				VoiceID: params.VoiceID,
			},
		},
		Config: didTalkConfig{
			Stitch: true,
			Animation: didAnimationConfig{
				Type:      "lip_sync",
				Blend:     true,
				Intensity: 1.2,
				Smoothing: 0.7,
			},
			Quality:    "high",
			FPS:        30,
			Resolution: "512x512",
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.didConfig.ApiUrl+"/talks", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	rawRes, err := c.FetchContent(req)
	if err != nil {
		return "", err
	}

	var created didCreateTalkResponse
	if err := json.Unmarshal(rawRes, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("talk creation response carried no id")
	}

	return created.ID, nil
}

func (c *didTalkClient) poll(ctx context.Context, talkID string) (*didTalkStatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.didConfig.ApiUrl+"/talks/"+talkID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.authHeader())

	rawRes, err := c.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var status didTalkStatusResponse
	if err := json.Unmarshal(rawRes, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

func (c *didTalkClient) authHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.didConfig.ApiKey))
}
