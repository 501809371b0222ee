package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/infrastructure/gin_interface/dto"
)

type TalkController interface {
	RegisterRoutes(g *gin.Engine)
}

type talkController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.TalkOrchestratorPort
}

func NewTalkController(logger outbound.LoggerPort, orchestrator inbound.TalkOrchestratorPort) TalkController {
	return &talkController{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

func (t *talkController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/talk", t.Talk)
}

// Talk is the one endpoint that cannot fail once its input is well-formed:
// the orchestrator always hands back a renderable result.
func (t *talkController) Talk(c *gin.Context) {
	var req dto.TalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "imageUrl and text are required"})
		return
	}

	result := t.orchestrator.Handle(c.Request.Context(), inbound.TalkParams{
		ImageURL:  req.ImageURL,
		Text:      req.Text,
		UserEmail: actingEmail(c, req.UserEmail),
	})

	c.JSON(http.StatusOK, dto.NewTalkResponse(result))
}
