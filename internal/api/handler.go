package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincrack/stocklens/internal/domain/dto"
	"github.com/fincrack/stocklens/internal/marketdata"
	"github.com/fincrack/stocklens/internal/service"
	"github.com/fincrack/stocklens/internal/ticker"
)

// Handler provides HTTP handlers for the stock analytics endpoints.
//
// Responsibilities:
//   - Validate and bind incoming JSON bodies and path parameters
//   - Call the service layer
//   - Translate service results and typed errors into response DTOs
//     with appropriate HTTP status codes
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// GetStockData handles POST /api/stock_data requests.
//
// GetStockData godoc
// @Summary      Full stock report
// @Description  Resolves a company name or ticker and returns valuation ratios, technical indicators, and a chart-ready daily series
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      dto.StockDataRequest  true  "Company input and optional moving-average window"
// @Success      200      {object}  dto.StockDataResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse       "Malformed request"
// @Failure      404      {object}  dto.ErrorResponse       "Unresolved ticker"
// @Failure      502      {object}  dto.ErrorResponse       "Market data unavailable"
// @Router       /api/stock_data [post]
func (h *Handler) GetStockData(c *gin.Context) {
	var req dto.StockDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("company_input is required", err))
		return
	}

	report, chart, err := h.svc.GetStockData(c.Request.Context(), req.CompanyInput, req.Window)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockDataResponse(report, chart))
}

// GetStockMetrics handles POST /api/stock_metrics requests.
//
// GetStockMetrics godoc
// @Summary      Compact stock metrics
// @Description  Resolves a company name or ticker and returns current price, valuation ratios, RSI, and MACD line
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      dto.StockMetricsRequest  true  "Company input"
// @Success      200      {object}  dto.StockMetricsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse         "Malformed request"
// @Failure      404      {object}  dto.ErrorResponse         "Unresolved ticker"
// @Failure      502      {object}  dto.ErrorResponse         "Market data unavailable"
// @Router       /api/stock_metrics [post]
func (h *Handler) GetStockMetrics(c *gin.Context) {
	var req dto.StockMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("company_input is required", err))
		return
	}

	report, err := h.svc.GetStockMetrics(c.Request.Context(), req.CompanyInput)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockMetricsResponse(report))
}

// GetMultiStockMetrics handles POST /api/multi_stock_metrics requests.
//
// Each constituent succeeds or fails on its own; the overall success flag is
// true when at least one constituent produced a report.
//
// GetMultiStockMetrics godoc
// @Summary      Batch stock metrics
// @Description  Computes compact metrics for a list of company inputs with per-constituent success status
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      dto.MultiStockMetricsRequest  true  "List of company inputs"
// @Success      200      {object}  dto.MultiStockMetricsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse              "Malformed request"
// @Router       /api/multi_stock_metrics [post]
func (h *Handler) GetMultiStockMetrics(c *gin.Context) {
	var req dto.MultiStockMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.CompanyInputs) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("please provide a list of company inputs in the 'company_inputs' field", err))
		return
	}

	results := h.svc.GetMultiStockMetrics(c.Request.Context(), req.CompanyInputs)

	resp := dto.MultiStockMetricsResponse{Data: make(map[string]dto.MultiStockEntry, len(results))}
	for key, result := range results {
		if result.Err != nil {
			resp.Data[key] = dto.MultiStockEntry{Success: false, Error: result.Err.Error()}
			continue
		}
		resp.Data[key] = dto.NewMultiStockEntry(result.Report)
		resp.Success = true
	}

	c.JSON(http.StatusOK, resp)
}

// GetSimpleMetrics handles GET /api/simple_metrics/{ticker} requests. The
// path ticker is used directly, bypassing name resolution.
//
// GetSimpleMetrics godoc
// @Summary      Simplified metrics by ticker
// @Description  Returns latest price, valuation ratios, RSI, and MACD line for the given ticker
// @Tags         stocks
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.SimpleMetricsResponse  "Success"
// @Failure      502     {object}  dto.ErrorResponse          "Market data unavailable"
// @Router       /api/simple_metrics/{ticker} [get]
func (h *Handler) GetSimpleMetrics(c *gin.Context) {
	report, err := h.svc.GetSimpleMetrics(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSimpleMetricsResponse(report))
}

// respondError maps typed service errors onto HTTP status codes. Every body
// is the standard success:false envelope.
func respondError(c *gin.Context, err error) {
	var unresolved *ticker.UnresolvedError
	if errors.As(err, &unresolved) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(unresolved.Error(), nil))
		return
	}

	var unavailable *marketdata.DataUnavailableError
	if errors.As(err, &unavailable) {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(unavailable.Error(), errors.Unwrap(unavailable)))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build stock report", err))
}
