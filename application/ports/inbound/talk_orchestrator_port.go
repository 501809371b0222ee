package inbound

import (
	"context"

	"github.com/Nikshey/TWINSKILL/domain"
)

type TalkParams struct {
	ImageURL  string
	Text      string
	UserEmail string
}

// TalkOrchestratorPort is the recovery boundary for the talk pipeline: it
// always produces a usable TalkResult, it never returns an error.
type TalkOrchestratorPort interface {
	Handle(ctx context.Context, params TalkParams) domain.TalkResult
}
