package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/infrastructure/gin_interface/dto"
)

type AccountController interface {
	RegisterRoutes(g *gin.Engine)
}

type accountController struct {
	logger    outbound.LoggerPort
	accounts  inbound.AccountServicePort
	userStore outbound.UserStorePort
}

func NewAccountController(logger outbound.LoggerPort, accounts inbound.AccountServicePort,
	userStore outbound.UserStorePort) AccountController {
	return &accountController{
		logger:    logger,
		accounts:  accounts,
		userStore: userStore,
	}
}

func (a *accountController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/register", a.Register)
	g.POST("/api/login", a.Login)
	g.PUT("/api/change-password", a.ChangePassword)
	g.PUT("/api/update-photo", a.UpdatePhoto)
	g.PUT("/api/reset-photo", a.ResetPhoto)
	g.DELETE("/api/delete-account", a.DeleteAccount)
	g.GET("/health", a.Health)
}

func (a *accountController) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "All fields required"})
		return
	}

	photo, err := readPhoto(c)
	if err != nil {
		respondError(c, err)
		return
	}

	photoPath, err := a.accounts.Register(c.Request.Context(), inbound.RegisterParams{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
		Gender:   form.Gender,
		Photo:    photo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message:   "User registered successfully!",
		PhotoPath: photoPath,
	})
}

func (a *accountController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email and password are required"})
		return
	}

	result, err := a.accounts.Login(c.Request.Context(), inbound.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User: dto.UserResponse{
			Name:      result.Profile.Name,
			Email:     result.Profile.Email,
			Phone:     result.Profile.Phone,
			PhotoPath: result.Profile.PhotoPath,
			AvatarURL: result.Profile.AvatarURL,
			Gender:    result.Profile.Gender,
		},
	})
}

func (a *accountController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email, current password, and new password are required"})
		return
	}

	err := a.accounts.ChangePassword(c.Request.Context(), inbound.ChangePasswordParams{
		Email:           actingEmail(c, req.Email),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}

func (a *accountController) UpdatePhoto(c *gin.Context) {
	var form dto.UpdatePhotoForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email is required"})
		return
	}

	photo, err := readPhoto(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if photo == nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Photo is required"})
		return
	}

	photoPath, err := a.accounts.UpdatePhoto(c.Request.Context(), inbound.UpdatePhotoParams{
		Email: actingEmail(c, form.Email),
		Photo: *photo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message:   "Profile photo updated successfully",
		PhotoPath: photoPath,
	})
}

func (a *accountController) ResetPhoto(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email is required"})
		return
	}

	if err := a.accounts.ResetPhoto(c.Request.Context(), actingEmail(c, req.Email)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile photo reset successfully"})
}

func (a *accountController) DeleteAccount(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email is required"})
		return
	}

	if err := a.accounts.DeleteAccount(c.Request.Context(), actingEmail(c, req.Email)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

func (a *accountController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{DBState: a.userStore.State()})
}
