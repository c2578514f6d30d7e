package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/service"
)

// Handler provides HTTP handlers for the cryptocurrency query endpoints.
//
// Responsibilities:
//   - Validate incoming path parameters
//   - Interact with the service layer for the query algorithms
//   - Translate service results and sentinel errors into response DTOs
//     and HTTP status codes
type Handler struct {
	svc service.CryptoService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.CryptoService) *Handler {
	return &Handler{svc: svc}
}

// GetStatistics handles GET /cryptocurrency/statistics/{symbol} requests.
//
// Responses:
//   - 200 OK: StatisticsResponse with oldest/newest/min/max for the symbol.
//   - 400 Bad Request: blank symbol.
//   - 404 Not Found: symbol not loaded.
//   - 500 Internal Server Error: unexpected failure.
//
// GetStatistics godoc
// @Summary      Get statistics for a symbol
// @Description  Returns oldest, newest, min and max price over the full series of a cryptocurrency
// @Tags         cryptocurrency
// @Produce      json
// @Param        symbol  path      string  true  "Cryptocurrency symbol (case-insensitive)"  example(BTC)
// @Success      200     {object}  dto.StatisticsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse       "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse       "Not Found"
// @Failure      500     {object}  dto.ErrorResponse       "Internal Error"
// @Router       /cryptocurrency/statistics/{symbol} [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	stats, err := h.svc.Statistics(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSymbol) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("cryptocurrency not supported", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute statistics", err))
		return
	}

	c.JSON(http.StatusOK, dto.StatisticsResponse{
		Symbol: stats.Symbol,
		Oldest: toPricePoint(stats.Oldest),
		Newest: toPricePoint(stats.Newest),
		Min:    stats.Min,
		Max:    stats.Max,
	})
}

// GetNormalizedRanges handles GET /cryptocurrency/normalized-ranges requests.
//
// Responses:
//   - 200 OK: array of {symbol, range}, descending by range, one entry per
//     loaded symbol.
//
// GetNormalizedRanges godoc
// @Summary      List symbols by normalized range
// @Description  Returns all cryptocurrencies sorted by (max-min)/min over their full series, descending
// @Tags         cryptocurrency
// @Produce      json
// @Success      200  {array}  dto.NormalizedRangeResponse  "Success"
// @Router       /cryptocurrency/normalized-ranges [get]
func (h *Handler) GetNormalizedRanges(c *gin.Context) {
	ranges := h.svc.NormalizedRanges(c.Request.Context())

	resp := make([]dto.NormalizedRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		resp = append(resp, dto.NormalizedRangeResponse{Symbol: r.Symbol, Range: r.Range})
	}

	c.JSON(http.StatusOK, resp)
}

// GetHighestNormalized handles GET /cryptocurrency/highest-normalized/{date}
// requests.
//
// Responses:
//   - 200 OK: the {symbol, range} with the highest normalized range on the
//     requested UTC calendar date.
//   - 400 Bad Request: date not in YYYY-MM-DD format.
//   - 404 Not Found: no symbol has any record on that date.
//   - 500 Internal Server Error: unexpected failure.
//
// GetHighestNormalized godoc
// @Summary      Get highest normalized range on a date
// @Description  Returns the cryptocurrency with the highest (max-min)/min among records on the given UTC date
// @Tags         cryptocurrency
// @Produce      json
// @Param        date  path      string  true  "UTC calendar date in YYYY-MM-DD"  example(2022-01-02)
// @Success      200   {object}  dto.NormalizedRangeResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse            "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse            "Not Found"
// @Failure      500   {object}  dto.ErrorResponse            "Internal Error"
// @Router       /cryptocurrency/highest-normalized/{date} [get]
func (h *Handler) GetHighestNormalized(c *gin.Context) {
	date := strings.TrimSpace(c.Param("date"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", err))
		return
	}

	best, err := h.svc.HighestNormalizedOnDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrNoDataForDate) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute normalized range", err))
		return
	}

	c.JSON(http.StatusOK, dto.NormalizedRangeResponse{Symbol: best.Symbol, Range: best.Range})
}

func toPricePoint(r models.PriceRecord) dto.PricePoint {
	return dto.PricePoint{Timestamp: r.Timestamp, Symbol: r.Symbol, Price: r.Price}
}
