package outbound

import (
	"context"
	"errors"
	"time"
)

// Talk job failure taxonomy. All variants are recovered by the orchestrator
// and converted to the fallback path; none reach the caller.
var (
	// ErrSubmissionRejected: the creation call failed outright (network,
	// auth, non-success status). No polling was attempted.
	ErrSubmissionRejected = errors.New("talk submission rejected")
	// ErrGenerationError: the external API reported the job as failed.
	ErrGenerationError = errors.New("talk generation failed")
	// ErrTimedOut: the job did not reach a terminal state within the budget.
	ErrTimedOut = errors.New("talk generation timed out")
	// ErrPollingError: a status poll itself failed. The job is abandoned
	// rather than re-polled.
	ErrPollingError = errors.New("talk status polling failed")
)

type SubmitTalkParams struct {
	ImageURL string
	Text     string
	VoiceID  string
}

// TalkVideoGeneratorPort submits one generation job and polls it to a
// terminal state within the given wall-clock budget.
type TalkVideoGeneratorPort interface {
	SubmitAndAwait(ctx context.Context, params SubmitTalkParams, budget time.Duration) (string, error)
	// Available reports whether an API credential is configured at all.
	Available() bool
}
