package listing

import (
	"time"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

// Listing is an active fixed-price offer of one token by one seller.
// The zero Listing is the wire shape for "not listed".
type Listing struct {
	ChainId      domain.ChainId     `json:"chainId" bson:"chainId"`
	NftAddress   domain.Address     `json:"nftAddress" bson:"nftAddress"`
	TokenId      domain.TokenId     `json:"tokenId" bson:"tokenId"`
	Seller       domain.Address     `json:"seller" bson:"seller"`
	Price        domain.TokenAmount `json:"price" bson:"price"`
	DisplayPrice string             `json:"displayPrice" bson:"displayPrice"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) ToId() ListingId {
	return ListingId{
		ChainId:    l.ChainId,
		NftAddress: l.NftAddress,
		TokenId:    l.TokenId,
	}
}

// ListingId is the composite key of a listing.
type ListingId struct {
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	NftAddress domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type PatchableListing struct {
	Price        *domain.TokenAmount `bson:"price,omitempty"`
	DisplayPrice *string             `bson:"displayPrice,omitempty"`
	UpdatedAt    *time.Time          `bson:"updatedAt,omitempty"`
}

// Repo is a pure keyed store for listings. It holds at most one listing per
// ListingId and carries no validation logic.
type Repo interface {
	// FindOne returns domain.ErrNotListed when no listing exists for the id.
	FindOne(c ctx.Ctx, id ListingId) (*Listing, error)
	Create(c ctx.Ctx, l *Listing) error
	Patch(c ctx.Ctx, id ListingId, p PatchableListing) error
	// Remove returns domain.ErrNotListed when no listing exists for the id.
	Remove(c ctx.Ctx, id ListingId) error
}
