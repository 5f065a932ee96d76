package usecase

import (
	"time"

	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/listing"
	"github.com/openmarket/goapi/domain/marketplace"
	"github.com/openmarket/goapi/domain/proceeds"
	"github.com/openmarket/goapi/service/chain/contract"
	"github.com/openmarket/goapi/service/payout"
)

type MarketplaceUseCaseCfg struct {
	ChainId      domain.ChainId
	ListingRepo  listing.Repo
	ProceedsRepo proceeds.Repo
	Erc721       contract.Erc721Contract
	Payout       payout.Service
	Notifier     marketplace.Notifier
}

type impl struct {
	chainId      domain.ChainId
	listingRepo  listing.Repo
	proceedsRepo proceeds.Repo
	erc721       contract.Erc721Contract
	payout       payout.Service
	notifier     marketplace.Notifier
}

// NewMarketplace builds the marketplace engine. Every mutating operation
// follows checks-effects-interactions: preconditions first, store mutations
// second, external calls (custody transfer, payout, notifications) last.
// Reordering the external calls ahead of the store writes reintroduces the
// double-sale and double-withdraw hazards the ordering exists to close.
func NewMarketplace(cfg *MarketplaceUseCaseCfg) marketplace.Usecase {
	return &impl{
		chainId:      cfg.ChainId,
		listingRepo:  cfg.ListingRepo,
		proceedsRepo: cfg.ProceedsRepo,
		erc721:       cfg.Erc721,
		payout:       cfg.Payout,
		notifier:     cfg.Notifier,
	}
}

func (im *impl) List(ctx bCtx.Ctx, id listing.ListingId, price domain.TokenAmount, caller domain.Address) error {
	n, err := price.BigInt()
	if err != nil {
		return err
	}
	if n.Sign() == 0 {
		return domain.ErrPriceMustBeAboveZero
	}

	if _, err := im.listingRepo.FindOne(ctx, id); err == nil {
		return domain.ErrAlreadyListed
	} else if err != domain.ErrNotListed {
		return err
	}

	owner, err := im.erc721.OwnerOf(ctx, id.ChainId, id.NftAddress, id.TokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("erc721.OwnerOf failed")
		return err
	}
	if !owner.Equals(caller) {
		return domain.ErrNotOwner
	}

	approved, err := im.erc721.IsApprovedOrOperator(ctx, id.ChainId, id.NftAddress, caller, id.TokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("erc721.IsApprovedOrOperator failed")
		return err
	}
	if !approved {
		return domain.ErrNotApprovedForMarketplace
	}

	now := time.Now()
	l := &listing.Listing{
		ChainId:      id.ChainId,
		NftAddress:   id.NftAddress.ToLower(),
		TokenId:      id.TokenId,
		Seller:       caller.ToLower(),
		Price:        price,
		DisplayPrice: price.Display(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := im.listingRepo.Create(ctx, l); err != nil {
		return err
	}

	im.notifier.Notify(ctx, marketplace.Event{
		Type:       marketplace.EventItemListed,
		Account:    caller.ToLower(),
		ChainId:    id.ChainId,
		NftAddress: id.NftAddress.ToLower(),
		TokenId:    id.TokenId,
		Price:      price,
	})
	return nil
}

func (im *impl) Buy(ctx bCtx.Ctx, id listing.ListingId, payment domain.TokenAmount, caller domain.Address) error {
	if _, err := payment.BigInt(); err != nil {
		return err
	}

	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !payment.Equals(l.Price) {
		return &domain.PriceNotMetError{Expected: l.Price}
	}

	// delete the listing before any external interaction so a reentrant buy
	// observes an absent listing, never a half-processed one
	if err := im.listingRepo.Remove(ctx, id); err != nil {
		return err
	}
	if err := im.proceedsRepo.Credit(ctx, l.Seller, payment); err != nil {
		ctx.WithFields(log.Fields{
			"seller": l.Seller,
			"amount": payment,
			"err":    err,
		}).Error("proceedsRepo.Credit failed")
		// the sale did not happen, put the listing back so the seller is not
		// left delisted and uncredited
		if cerr := im.listingRepo.Create(ctx, l); cerr != nil {
			ctx.WithFields(log.Fields{
				"id":  id,
				"err": cerr,
			}).Error("restore listing failed, listing needs manual repair")
		}
		return err
	}

	// the seller's proceeds are intentionally not rolled back when the
	// custody transfer fails; the listing is gone and the payment is held
	// for the seller, the transfer can be retried out of band
	if _, err := im.erc721.TransferFrom(ctx, id.ChainId, id.NftAddress, l.Seller, caller, id.TokenId); err != nil {
		ctx.WithFields(log.Fields{
			"id":     id,
			"seller": l.Seller,
			"buyer":  caller,
			"err":    err,
		}).Error("erc721.TransferFrom failed")
		return err
	}

	im.notifier.Notify(ctx, marketplace.Event{
		Type:       marketplace.EventItemBought,
		Account:    caller.ToLower(),
		ChainId:    id.ChainId,
		NftAddress: id.NftAddress.ToLower(),
		TokenId:    id.TokenId,
		Price:      l.Price,
	})
	return nil
}

func (im *impl) Cancel(ctx bCtx.Ctx, id listing.ListingId, caller domain.Address) error {
	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !l.Seller.Equals(caller) {
		return domain.ErrNotOwner
	}

	if err := im.listingRepo.Remove(ctx, id); err != nil {
		return err
	}

	im.notifier.Notify(ctx, marketplace.Event{
		Type:       marketplace.EventItemCancelled,
		Account:    l.Seller,
		ChainId:    id.ChainId,
		NftAddress: id.NftAddress.ToLower(),
		TokenId:    id.TokenId,
	})
	return nil
}

func (im *impl) UpdateListing(ctx bCtx.Ctx, id listing.ListingId, newPrice domain.TokenAmount, caller domain.Address) error {
	n, err := newPrice.BigInt()
	if err != nil {
		return err
	}
	if n.Sign() == 0 {
		return domain.ErrPriceMustBeAboveZero
	}

	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !l.Seller.Equals(caller) {
		return domain.ErrNotOwner
	}

	now := time.Now()
	display := newPrice.Display()
	patch := listing.PatchableListing{
		Price:        &newPrice,
		DisplayPrice: &display,
		UpdatedAt:    &now,
	}
	if err := im.listingRepo.Patch(ctx, id, patch); err != nil {
		return err
	}

	// same event shape as a fresh listing, matching the contract surface
	im.notifier.Notify(ctx, marketplace.Event{
		Type:       marketplace.EventItemListed,
		Account:    l.Seller,
		ChainId:    id.ChainId,
		NftAddress: id.NftAddress.ToLower(),
		TokenId:    id.TokenId,
		Price:      newPrice,
	})
	return nil
}

func (im *impl) Withdraw(ctx bCtx.Ctx, caller domain.Address) (domain.TokenAmount, error) {
	cur, err := im.proceedsRepo.Get(ctx, caller)
	if err != nil {
		return "", err
	}
	if !cur.Balance.IsPositive() {
		return "", domain.ErrNoProceeds
	}

	// zero the balance before transferring so a reentrant withdraw finds
	// nothing left to drain
	prior, err := im.proceedsRepo.Zero(ctx, caller)
	if err != nil {
		return "", err
	}
	if !prior.IsPositive() {
		return "", domain.ErrNoProceeds
	}

	if _, err := im.payout.Send(ctx, im.chainId, caller, prior); err != nil {
		ctx.WithFields(log.Fields{
			"caller": caller,
			"amount": prior,
			"err":    err,
		}).Error("payout.Send failed")
		// compensating rollback, the balance must survive a failed payout
		if cerr := im.proceedsRepo.Credit(ctx, caller, prior); cerr != nil {
			ctx.WithFields(log.Fields{
				"caller": caller,
				"amount": prior,
				"err":    cerr,
			}).Error("restore proceeds failed, balance needs manual repair")
		}
		return "", err
	}

	im.notifier.Notify(ctx, marketplace.Event{
		Type:    marketplace.EventProceedsWithdrawn,
		Account: caller.ToLower(),
		ChainId: im.chainId,
		Price:   prior,
	})
	return prior, nil
}

func (im *impl) GetListing(ctx bCtx.Ctx, id listing.ListingId) (*listing.Listing, error) {
	l, err := im.listingRepo.FindOne(ctx, id)
	if err == domain.ErrNotListed {
		// zero listing is the wire shape for "not listed"
		return &listing.Listing{
			ChainId:    id.ChainId,
			NftAddress: id.NftAddress.ToLower(),
			TokenId:    id.TokenId,
			Price:      "0",
		}, nil
	} else if err != nil {
		return nil, err
	}
	return l, nil
}

func (im *impl) GetProceeds(ctx bCtx.Ctx, address domain.Address) (domain.TokenAmount, error) {
	p, err := im.proceedsRepo.Get(ctx, address)
	if err != nil {
		return "", err
	}
	return p.Balance, nil
}
