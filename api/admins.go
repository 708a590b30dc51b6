package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/service/account"
)

// AdminHandler serves the legacy /Api/BookToFly group: the admin auth flows.
// Same shape as the user flows but with the Admin/AdminChange roles and the
// adminName field name the old clients send.
type AdminHandler struct {
	accounts account.AccountUseCase
	tokens   *auth.TokenIssuer
	log      *zap.Logger
}

type adminRegisterRequest struct {
	AdminName string `json:"adminName" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func NewAdminHandler(accounts account.AccountUseCase, tokens *auth.TokenIssuer, log *zap.Logger) *AdminHandler {
	return &AdminHandler{accounts: accounts, tokens: tokens, log: log}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/getTokenForPassword/:adminName", h.resetToken)
	router.PUT("/changePassword", auth.RequireRoles(h.tokens, auth.RoleAdminChange), h.changePassword)
}

func (h *AdminHandler) register(c *gin.Context) {
	var req adminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.Register(c.Request.Context(), req.AdminName, req.Password); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin registered successfully"})
}

func (h *AdminHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: result.Token, ExpiresIn: result.ExpiresIn})
}

func (h *AdminHandler) resetToken(c *gin.Context) {
	result, err := h.accounts.ResetToken(c.Request.Context(), c.Param("adminName"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: result.Token, ExpiresIn: result.ExpiresIn})
}

func (h *AdminHandler) changePassword(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.ChangePassword(c.Request.Context(), identity.Subject, req.NewPassword); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}
