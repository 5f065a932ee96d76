package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) || errors.Is(err, domain.ErrNotListed):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrAlreadyListed):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrNotOwner):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrPriceMustBeAboveZero) ||
			errors.Is(err, domain.ErrNoProceeds) ||
			errors.Is(err, domain.ErrNotApprovedForMarketplace) ||
			errors.Is(err, domain.ErrInvalidAmountFormat) ||
			errors.Is(err, domain.ErrInvalidNonce) ||
			errors.Is(err, domain.ErrInvalidSignature) ||
			domain.IsPriceNotMet(err):
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
