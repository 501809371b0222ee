package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/infrastructure/gin_interface/dto"
)

type AvatarController interface {
	RegisterRoutes(g *gin.Engine)
}

type avatarController struct {
	logger        outbound.LoggerPort
	avatarCreator inbound.AvatarCreatorPort
}

func NewAvatarController(logger outbound.LoggerPort, avatarCreator inbound.AvatarCreatorPort) AvatarController {
	return &avatarController{
		logger:        logger,
		avatarCreator: avatarCreator,
	}
}

func (a *avatarController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/create-avatar", a.CreateAvatar)
}

func (a *avatarController) CreateAvatar(c *gin.Context) {
	var form dto.CreateAvatarForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email is required"})
		return
	}

	photo, err := readPhoto(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := a.avatarCreator.Create(c.Request.Context(), inbound.CreateAvatarParams{
		Email:         actingEmail(c, form.Email),
		Photo:         photo,
		PublicBaseURL: publicBaseURL(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateAvatarResponse{
		Message:     "Avatar created successfully",
		AvatarURL:   result.AvatarURL,
		FaceDetails: result.FaceDetails,
		Gender:      result.Gender,
	})
}
