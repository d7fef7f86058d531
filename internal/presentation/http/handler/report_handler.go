package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
)

// ReportHandler handles management report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) period(c *gin.Context) (*service.Period, bool) {
	period, err := service.ResolvePeriod(c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return period, true
}

// Sales handles the sales summary report
func (h *ReportHandler) Sales(c *gin.Context) {
	period, ok := h.period(c)
	if !ok {
		return
	}

	summary, err := h.reportService.SalesSummary(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated successfully", summary)
}

// TopProducts handles the best sellers report
func (h *ReportHandler) TopProducts(c *gin.Context) {
	period, ok := h.period(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.reportService.TopProducts(c.Request.Context(), period, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products report generated successfully", products)
}

// StockValuation handles the stock valuation report
func (h *ReportHandler) StockValuation(c *gin.Context) {
	lines, err := h.reportService.StockValuation(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock valuation generated successfully", lines)
}

// Expenses handles the expense totals report
func (h *ReportHandler) Expenses(c *gin.Context) {
	period, ok := h.period(c)
	if !ok {
		return
	}

	totals, err := h.reportService.ExpenseTotals(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense report generated successfully", totals)
}

// Kitchen handles the kitchen throughput report
func (h *ReportHandler) Kitchen(c *gin.Context) {
	period, ok := h.period(c)
	if !ok {
		return
	}

	throughput, err := h.reportService.KitchenThroughput(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen report generated successfully", throughput)
}
