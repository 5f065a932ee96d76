package activity

import (
	"time"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/listing"
)

type Type string

const (
	TypeList          Type = "list"
	TypeCancelListing Type = "cancelListing"
	TypeBuy           Type = "buy"
	TypeWithdraw      Type = "withdraw"
)

// Activity is one persisted marketplace event, the audit trail backing the
// token history api.
type Activity struct {
	Id           string             `json:"id" bson:"activityId"`
	ChainId      domain.ChainId     `json:"chainId" bson:"chainId"`
	NftAddress   domain.Address     `json:"nftAddress" bson:"nftAddress"`
	TokenId      domain.TokenId     `json:"tokenId" bson:"tokenId"`
	Type         Type               `json:"type" bson:"type"`
	Account      domain.Address     `json:"account" bson:"account"`
	Price        domain.TokenAmount `json:"price,omitempty" bson:"price,omitempty"`
	DisplayPrice string             `json:"displayPrice,omitempty" bson:"displayPrice,omitempty"`
	Time         time.Time          `json:"time" bson:"time"`
}

type Repo interface {
	Insert(c ctx.Ctx, a *Activity) error
	// FindByToken returns activities for one token, newest first.
	FindByToken(c ctx.Ctx, id listing.ListingId, offset, limit int) ([]Activity, error)
}
