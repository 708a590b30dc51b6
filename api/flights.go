package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/domain"
	"github.com/Domenick1991/booktofly/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
	tokens  *auth.TokenIssuer
	log     *zap.Logger
}

type flightInputDTO struct {
	FlightNumber   string  `json:"flightNumber" binding:"required,flightnumber"`
	FlightName     string  `json:"flightName" binding:"required,max=100"`
	Source         string  `json:"source" binding:"required,max=50"`
	Destination    string  `json:"destination" binding:"required,max=50"`
	AvailableSeats int     `json:"availableSeats" binding:"required,min=1,max=500"`
	TicketPrice    float64 `json:"ticketPrice" binding:"required,min=1000,max=50000"`
	DepartureTime  string  `json:"departureTime" binding:"required,datetime=15:04:05"`
	ArrivalTime    string  `json:"arrivalTime" binding:"required,datetime=15:04:05"`
}

// flightDTO is the wire form of a flight record. On update the client sends
// the full record including flightType, but the type is re-derived from the
// number prefix server-side.
type flightDTO struct {
	FlightNumber   string  `json:"flightNumber"`
	FlightName     string  `json:"flightName"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	AvailableSeats int     `json:"availableSeats"`
	TicketPrice    float64 `json:"ticketPrice"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	FlightType     string  `json:"flightType"`
}

func NewFlightHandler(service flights.FlightUseCase, tokens *auth.TokenIssuer, log *zap.Logger) *FlightHandler {
	return &FlightHandler{service: service, tokens: tokens, log: log}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/DisplayFlightsByType/:flightType", h.listByType)
	router.GET("/GetFlightDetails/:flightNumber", h.get)

	adminOnly := auth.RequireRoles(h.tokens, auth.RoleAdmin)
	router.POST("/AddFlight", adminOnly, h.create)
	router.PUT("/UpdateFlight/:flightNumber", adminOnly, h.update)
	router.DELETE("/DeleteFlight/:flightNumber", adminOnly, h.delete)
}

func (h *FlightHandler) listByType(c *gin.Context) {
	list, err := h.service.ListByType(c.Request.Context(), c.Param("flightType"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]flightDTO, 0, len(list))
	for _, f := range list {
		out = append(out, toFlightDTO(&f))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Request.Context(), c.Param("flightNumber"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toFlightDTO(flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightInputDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &domain.Flight{
		FlightNumber:   req.FlightNumber,
		FlightName:     req.FlightName,
		Source:         req.Source,
		Destination:    req.Destination,
		AvailableSeats: req.AvailableSeats,
		TicketPrice:    req.TicketPrice,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/FlightDetailsController/GetFlightDetails/%s", created.FlightNumber))
	c.JSON(http.StatusCreated, toFlightDTO(created))
}

func (h *FlightHandler) update(c *gin.Context) {
	var req flightDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.Update(c.Request.Context(), c.Param("flightNumber"), &domain.Flight{
		FlightNumber:   req.FlightNumber,
		FlightName:     req.FlightName,
		Source:         req.Source,
		Destination:    req.Destination,
		AvailableSeats: req.AvailableSeats,
		TicketPrice:    req.TicketPrice,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight updated successfully."})
}

func (h *FlightHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("flightNumber")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight deleted successfully."})
}

func toFlightDTO(f *domain.Flight) flightDTO {
	return flightDTO{
		FlightNumber:   f.FlightNumber,
		FlightName:     f.FlightName,
		Source:         f.Source,
		Destination:    f.Destination,
		AvailableSeats: f.AvailableSeats,
		TicketPrice:    f.TicketPrice,
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		FlightType:     string(f.FlightType),
	}
}
