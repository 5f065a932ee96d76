package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// marketplace errors
	ErrNotOwner                  = errors.New("caller is not the owner")
	ErrAlreadyListed             = errors.New("item is already listed")
	ErrNotListed                 = errors.New("item is not listed")
	ErrPriceMustBeAboveZero      = errors.New("price must be above zero")
	ErrNotApprovedForMarketplace = errors.New("marketplace is not approved to transfer item")
	ErrNoProceeds                = errors.New("no proceeds to withdraw")
	ErrInvalidAmountFormat       = errors.New("invalid amount format")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidNonce     = errors.New("Invalid nonce")
)

// PriceNotMetError is returned when the payment does not exactly match the
// listed price. It carries the expected price for diagnostics.
type PriceNotMetError struct {
	Expected TokenAmount
}

func (e *PriceNotMetError) Error() string {
	return fmt.Sprintf("price not met, expected %s", e.Expected)
}

func IsPriceNotMet(err error) bool {
	var pnm *PriceNotMetError
	return errors.As(err, &pnm)
}
