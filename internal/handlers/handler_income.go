package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler serves the income reports of the caller's register
type incomeHandler struct {
	reportingService portssvc.IncomeReportingSvc
}

// newIncomeHandler creates a new incomeHandler
func newIncomeHandler(rs portssvc.IncomeReportingSvc) *incomeHandler {
	return &incomeHandler{reportingService: rs}
}

// registerIncomeRoutes registers the income report routes
func registerIncomeRoutes(rg *gin.RouterGroup, reportingService portssvc.IncomeReportingSvc) {
	h := newIncomeHandler(reportingService)

	income := rg.Group("/income")
	{
		income.GET("/monthly", h.getMonthlySummary)
		income.GET("/daily", h.getDailyDetail)
		income.GET("/history", h.getHistory)
	}
}

// getMonthlySummary godoc
// @Summary Monthly income summary
// @Description Total, card and cash income of a month with a per-day breakdown.
// @Tags income
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Param posID query string false "Pos ID, defaults to the caller's register"
// @Success 200 {object} dto.MonthlyIncomeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No register found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/monthly [get]
func (h *incomeHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	month, err := domain.ParseYearMonth(c.Query("month"))
	if err != nil {
		logger.Warn("Invalid month parameter", slog.String("month", c.Query("month")))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month format. Use YYYY-MM"})
		return
	}

	summary, err := h.reportingService.MonthlyIncomeSummary(c.Request.Context(), memberID, c.Query("posID"), month)
	if err != nil {
		respondError(c, logger, err, "Failed to generate monthly income summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyIncomeResponse(summary))
}

// getDailyDetail godoc
// @Summary Daily income detail
// @Tags income
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param posID query string false "Pos ID, defaults to the caller's register"
// @Success 200 {object} dto.DailyIncomeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No register found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/daily [get]
func (h *incomeHandler) getDailyDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		logger.Warn("Invalid date parameter", slog.String("date", c.Query("date")))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	detail, err := h.reportingService.DailyIncomeDetail(c.Request.Context(), memberID, c.Query("posID"), date)
	if err != nil {
		respondError(c, logger, err, "Failed to generate daily income detail")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyIncomeResponse(*detail))
}

// getHistory godoc
// @Summary Three month income history
// @Description Total income of the month and the two months before it.
// @Tags income
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Param posID query string false "Pos ID, defaults to the caller's register"
// @Success 200 {object} dto.IncomeHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No register found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/history [get]
func (h *incomeHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	month, err := domain.ParseYearMonth(c.Query("month"))
	if err != nil {
		logger.Warn("Invalid month parameter", slog.String("month", c.Query("month")))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month format. Use YYYY-MM"})
		return
	}

	history, err := h.reportingService.IncomeHistory(c.Request.Context(), memberID, c.Query("posID"), month)
	if err != nil {
		respondError(c, logger, err, "Failed to generate income history")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeHistoryResponse(history))
}
