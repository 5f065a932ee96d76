package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/goapi/base/ctx"
	hcdomain "github.com/openmarket/goapi/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/health", handler.check)
}

// check
//
//	@Description	Report reachability of mongo and redis
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	healthcheck.Status
//	@Failure		503	{object}	healthcheck.Status
//	@Router			/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	st := h.healthCheck.Check(context)
	if !st.Healthy {
		return c.JSON(http.StatusServiceUnavailable, st)
	}
	return c.JSON(http.StatusOK, st)
}
