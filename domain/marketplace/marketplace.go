package marketplace

import (
	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/listing"
)

// EventType distinguishes the notification events the engine emits.
type EventType string

const (
	EventItemListed    EventType = "itemListed"
	EventItemBought    EventType = "itemBought"
	EventItemCancelled EventType = "itemCancelled"
	// EventProceedsWithdrawn is account scoped, its token fields are empty.
	EventProceedsWithdrawn EventType = "proceedsWithdrawn"
)

// Event is a marketplace notification. Price is empty for cancellations.
// An update emits the same EventItemListed shape as a fresh listing, matching
// the contract event surface subscribers already consume.
type Event struct {
	Type       EventType          `json:"type"`
	Account    domain.Address     `json:"account"` // seller, or buyer for EventItemBought
	ChainId    domain.ChainId     `json:"chainId"`
	NftAddress domain.Address     `json:"nftAddress"`
	TokenId    domain.TokenId     `json:"tokenId"`
	Price      domain.TokenAmount `json:"price,omitempty"`
}

// Notifier delivers marketplace events to external consumers. Delivery is
// best effort; failures must not fail the operation that emitted the event.
type Notifier interface {
	Notify(c ctx.Ctx, evt Event)
}

// Usecase is the marketplace engine. All five mutating operations validate
// preconditions first, then mutate internal state, and only then touch
// external collaborators (nft transfer, payout, notifications).
type Usecase interface {
	List(c ctx.Ctx, id listing.ListingId, price domain.TokenAmount, caller domain.Address) error
	Buy(c ctx.Ctx, id listing.ListingId, payment domain.TokenAmount, caller domain.Address) error
	Cancel(c ctx.Ctx, id listing.ListingId, caller domain.Address) error
	UpdateListing(c ctx.Ctx, id listing.ListingId, newPrice domain.TokenAmount, caller domain.Address) error
	Withdraw(c ctx.Ctx, caller domain.Address) (domain.TokenAmount, error)

	// GetListing returns the zero Listing when the id is not listed.
	GetListing(c ctx.Ctx, id listing.ListingId) (*listing.Listing, error)
	GetProceeds(c ctx.Ctx, address domain.Address) (domain.TokenAmount, error)
}
