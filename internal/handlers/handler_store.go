package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// storeHandler handles business registrations, registers and sales
type storeHandler struct {
	storeService portssvc.StoreSvcFacade
}

func newStoreHandler(ss portssvc.StoreSvcFacade) *storeHandler {
	return &storeHandler{storeService: ss}
}

// registerStoreRoutes registers routes for business registrations, Pos and sales
func registerStoreRoutes(rg *gin.RouterGroup, storeService portssvc.StoreSvcFacade) {
	h := newStoreHandler(storeService)

	registrations := rg.Group("/business-registrations")
	{
		registrations.POST("", h.createBusinessRegistration)
		registrations.POST("/:registrationID/pos", h.createPos)
	}

	pos := rg.Group("/pos")
	{
		pos.GET("", h.listPos)
		pos.POST("/:posID/sales", h.recordSale)
	}
}

// createBusinessRegistration godoc
// @Summary Register a business
// @Tags store
// @Accept json
// @Produce json
// @Param registration body dto.CreateBusinessRegistrationRequest true "Business details"
// @Success 201 {object} dto.BusinessRegistrationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Business number already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business-registrations [post]
func (h *storeHandler) createBusinessRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBusinessRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind registration request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	reg, err := h.storeService.RegisterBusiness(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to register business")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBusinessRegistrationResponse(reg))
}

// createPos godoc
// @Summary Add a point-of-sale to a business registration
// @Tags store
// @Accept json
// @Produce json
// @Param registrationID path string true "Registration ID"
// @Param pos body dto.CreatePosRequest true "Register details"
// @Success 201 {object} dto.PosResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business-registrations/{registrationID}/pos [post]
func (h *storeHandler) createPos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	pos, err := h.storeService.RegisterPos(c.Request.Context(), memberID, c.Param("registrationID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register point-of-sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPosResponse(pos))
}

// listPos godoc
// @Summary List the caller's point-of-sale registers
// @Tags store
// @Produce json
// @Success 200 {object} dto.ListPosResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos [get]
func (h *storeHandler) listPos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	pos, err := h.storeService.ListPos(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, logger, err, "Failed to list point-of-sale registers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPosResponse(pos))
}

// recordSale godoc
// @Summary Record a sale
// @Description Stores one sale on a register owned by the caller. saleDate defaults to now.
// @Tags store
// @Accept json
// @Produce json
// @Param posID path string true "Pos ID"
// @Param sale body dto.RecordSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/{posID}/sales [post]
func (h *storeHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	posID := c.Param("posID")
	sale, err := h.storeService.RecordSale(c.Request.Context(), memberID, posID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record sale")
		return
	}
	logger.Info("Sale recorded", slog.String("posID", posID), slog.String("saleID", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}
