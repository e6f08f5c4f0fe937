package api

import (
	"net/http"

	"SawitFeed/internal/usecase"
	xhttp "SawitFeed/pkg/http"
	xlogger "SawitFeed/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PricesEchoHandler exposes the aggregation operations over HTTP.
// These endpoints never return error statuses for pipeline problems;
// the service degrades to fallback data internally.
type PricesEchoHandler struct {
	logger *xlogger.Logger
	svc    *usecase.PriceService
}

func NewPricesEchoHandler(logger *xlogger.Logger, svc *usecase.PriceService) *PricesEchoHandler {
	return &PricesEchoHandler{logger: logger, svc: svc}
}

func (h *PricesEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/prices", h.Prices)
	g.GET("/prices/fallback", h.Fallback)
	e.GET("/health", h.Health)
}

// Prices serves the aggregated snapshot, cached up to the configured TTL.
func (h *PricesEchoHandler) Prices(c echo.Context) error {
	snap := h.svc.GetCurrentPrices(c.Request().Context())
	return xhttp.SuccessResponse(c, snap)
}

// FallbackRequest carries the optional history horizon for a
// known-good-data retry.
type FallbackRequest struct {
	Months int `query:"months" default:"6" validate:"gte=1,lte=12"`
}

// Fallback serves the fixed price set with a synthetic history,
// bypassing sources and cache.
func (h *PricesEchoHandler) Fallback(c echo.Context) error {
	req := &FallbackRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	snap := h.svc.FallbackSnapshot(c.Request().Context(), req.Months)
	return xhttp.SuccessResponse(c, snap)
}

func (h *PricesEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
