package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/domain"
	"github.com/Domenick1991/booktofly/internal/service/account"
	"github.com/Domenick1991/booktofly/internal/service/booking"
)

const dateOfJourneyLayout = "2006-01-02"

// UserHandler serves the /api/UserController group: user auth flows plus
// ticket booking.
type UserHandler struct {
	accounts account.AccountUseCase
	bookings booking.BookingUseCase
	tokens   *auth.TokenIssuer
	log      *zap.Logger
}

type userRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

type authResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

type ticketInputDTO struct {
	FlightNumber  string `json:"flightNumber" binding:"required"`
	PassangerName string `json:"passangerName" binding:"required,passengername"`
	PassangerAge  int    `json:"passangerAge" binding:"required,min=18,max=110"`
	DateOfJourney string `json:"dateOfJourney" binding:"required,datetime=2006-01-02"`
}

type ticketOutputDTO struct {
	BookingID     int64  `json:"bookingId"`
	FlightNumber  string `json:"flightNumber"`
	PassangerName string `json:"passangerName"`
	PassangerAge  int    `json:"passangerAge"`
	DateOfJourney string `json:"dateOfJourney"`
	FlightName    string `json:"flightName"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
}

func NewUserHandler(accounts account.AccountUseCase, bookings booking.BookingUseCase, tokens *auth.TokenIssuer, log *zap.Logger) *UserHandler {
	return &UserHandler{accounts: accounts, bookings: bookings, tokens: tokens, log: log}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/getTokenForPassword/:userName", h.resetToken)
	router.PUT("/changePassword", auth.RequireRoles(h.tokens, auth.RoleUserChange, auth.RoleUser), h.changePassword)

	authed := auth.RequireRoles(h.tokens, auth.RoleAdmin, auth.RoleUser)
	router.POST("/BookTicket", authed, h.bookTicket)
	router.GET("/GetTicketsByUsername/:username", authed, h.ticketsByUsername)
}

func (h *UserHandler) register(c *gin.Context) {
	var req userRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User registered successfully"})
}

func (h *UserHandler) login(c *gin.Context) {
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

func (h *UserHandler) resetToken(c *gin.Context) {
	result, err := h.accounts.ResetToken(c.Request.Context(), c.Param("userName"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: result.Token, ExpiresIn: result.ExpiresIn})
}

func (h *UserHandler) changePassword(c *gin.Context) {
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

func (h *UserHandler) bookTicket(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	var req ticketInputDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Layout is enforced by the binding tag; a parse failure here is a bug.
	journey, err := time.Parse(dateOfJourneyLayout, req.DateOfJourney)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateOfJourney, expected YYYY-MM-DD"})
		return
	}

	_, err = h.bookings.Book(c.Request.Context(), booking.BookTicketInput{
		FlightNumber:  req.FlightNumber,
		PassengerName: req.PassangerName,
		PassengerAge:  req.PassangerAge,
		DateOfJourney: journey,
	}, identity)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket added successfully."})
}

func (h *UserHandler) ticketsByUsername(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	tickets, err := h.bookings.ListByUsername(c.Request.Context(), c.Param("username"), identity)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]ticketOutputDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketDTO(&t))
	}
	c.JSON(http.StatusOK, out)
}

func toTicketDTO(t *domain.Ticket) ticketOutputDTO {
	return ticketOutputDTO{
		BookingID:     t.BookingID,
		FlightNumber:  t.FlightNumber,
		PassangerName: t.PassengerName,
		PassangerAge:  t.PassengerAge,
		DateOfJourney: t.DateOfJourney.Format(dateOfJourneyLayout),
		FlightName:    t.FlightName,
		Source:        t.Source,
		Destination:   t.Destination,
	}
}
