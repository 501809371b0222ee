package dto

type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Phone    string `form:"phone" binding:"required"`
	Password string `form:"password" binding:"required"`
	Gender   string `form:"gender"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TalkRequest struct {
	ImageURL  string `json:"imageUrl" binding:"required"`
	Text      string `json:"text" binding:"required"`
	UserEmail string `json:"userEmail"`
}

type CreateAvatarForm struct {
	Email string `form:"email" binding:"required"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type UpdatePhotoForm struct {
	Email string `form:"email" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}
