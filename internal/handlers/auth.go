package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/legalkaz/backend/internal/requestdata"
	"github.com/yungbote/legalkaz/backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	ref, err := ah.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	requestdata.GetRequestData(c.Request.Context()).SetAccountID(ref.ID)
	c.JSON(http.StatusOK, ref)
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	ref, err := ah.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	requestdata.GetRequestData(c.Request.Context()).SetAccountID(ref.ID)
	c.JSON(http.StatusOK, ref)
}
