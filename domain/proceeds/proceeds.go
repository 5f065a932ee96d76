package proceeds

import (
	"time"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

// Proceeds is the balance owed to a seller, held until withdrawn.
// Every address implicitly owns a zero balance; a missing entry and a zero
// entry are indistinguishable through the usecase surface.
type Proceeds struct {
	Address   domain.Address     `json:"address" bson:"address"`
	Balance   domain.TokenAmount `json:"balance" bson:"balance"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Repo is a pure keyed store for seller balances, no validation logic.
type Repo interface {
	// Get returns a zero balance for addresses that never received proceeds.
	Get(c ctx.Ctx, address domain.Address) (*Proceeds, error)
	// Credit adds amount to the balance. The read-add-write runs inside a
	// mongo transaction so concurrent credits cannot lose updates.
	Credit(c ctx.Ctx, address domain.Address, amount domain.TokenAmount) error
	// Zero resets the balance and returns the prior amount.
	Zero(c ctx.Ctx, address domain.Address) (domain.TokenAmount, error)
}
