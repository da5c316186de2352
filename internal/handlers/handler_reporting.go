package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rkabera/momotrack/internal/core/domain"
	portssvc "github.com/rkabera/momotrack/internal/core/ports/services"
	"github.com/rkabera/momotrack/internal/dto"
	"github.com/rkabera/momotrack/internal/middleware"
)

// reportingHandler handles HTTP requests for the analytics dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the dashboard query routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/stats", h.getStats)
	rg.GET("/transactions", h.listTransactions)
	rg.GET("/transaction-types", h.listTransactionTypes)
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Returns overall totals plus per-type and monthly aggregates
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /api/stats [get]
func (h *reportingHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.Stats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(*report))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns a filtered, paginated, date-descending transaction listing
// @Tags reporting
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Param type query string false "Transaction type filter"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Param search query string false "Matches recipient, sender or message body"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /api/transactions [get]
func (h *reportingHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid transaction listing request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := toTransactionFilter(req)
	if err != nil {
		logger.Warn("Invalid transaction listing filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	records, total, err := h.reportingService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	resp := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(records)),
		Pagination: dto.PaginationResponse{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: (total + int64(filter.Limit) - 1) / int64(filter.Limit),
		},
	}
	for _, record := range records {
		resp.Transactions = append(resp.Transactions, dto.NewTransactionResponse(record))
	}

	c.JSON(http.StatusOK, resp)
}

// listTransactionTypes godoc
// @Summary List transaction types
// @Description Returns the distinct stored transaction types with counts
// @Tags reporting
// @Produce json
// @Success 200 {array} dto.TransactionTypeResponse
// @Failure 500 {object} map[string]string "Failed to list transaction types"
// @Router /api/transaction-types [get]
func (h *reportingHandler) listTransactionTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.reportingService.TransactionTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transaction types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transaction types"})
		return
	}

	resp := make([]dto.TransactionTypeResponse, 0, len(types))
	for _, tc := range types {
		resp = append(resp, dto.TransactionTypeResponse{
			TypeName:    string(tc.TypeName),
			Description: domain.TransactionTypeDescriptions[tc.TypeName],
			Count:       tc.Count,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// toTransactionFilter converts the bound request into the domain filter.
func toTransactionFilter(req dto.ListTransactionsRequest) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Page:   req.Page,
		Limit:  req.Limit,
		Search: req.Search,
	}

	if req.Type != nil && *req.Type != "" && *req.Type != "all" {
		t := domain.TransactionType(*req.Type)
		filter.Type = &t
	}
	if req.StartDate != nil {
		start, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return filter, err
		}
		ms := start.UnixMilli()
		filter.StartDate = &ms
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return filter, err
		}
		// Inclusive end of day.
		ms := end.Add(24*time.Hour - time.Millisecond).UnixMilli()
		filter.EndDate = &ms
	}
	if req.MinAmount != nil {
		min := decimal.NewFromFloat(*req.MinAmount)
		filter.MinAmount = &min
	}
	if req.MaxAmount != nil {
		max := decimal.NewFromFloat(*req.MaxAmount)
		filter.MaxAmount = &max
	}

	return filter, nil
}
