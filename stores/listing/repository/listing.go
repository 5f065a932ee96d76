package repository

import (
	"fmt"

	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/database/mongoclient"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/listing"
	"github.com/openmarket/goapi/service/cache"
	"github.com/openmarket/goapi/service/query"
)

type listingRepo struct {
	q     query.Mongo
	cache cache.Service
}

func NewListingRepo(q query.Mongo, cacheService cache.Service) listing.Repo {
	return &listingRepo{q: q, cache: cacheService}
}

func (r *listingRepo) FindOne(ctx bCtx.Ctx, id listing.ListingId) (*listing.Listing, error) {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &listing.Listing{}
	if r.cache != nil {
		err = r.cache.GetByFunc(ctx, cacheKey(id), res, func() (interface{}, error) {
			out := &listing.Listing{}
			if err := r.q.FindOne(ctx, domain.TableListings, sel, out); err != nil && err != query.ErrNotFound {
				return nil, err
			}
			// misses are cached as the zero listing, an absent token is read
			// as hot as a listed one and never error-logs on the way
			return out, nil
		})
		if err == nil && res.Seller == "" {
			return nil, domain.ErrNotListed
		}
	} else {
		err = r.q.FindOne(ctx, domain.TableListings, sel, res)
	}
	if err == query.ErrNotFound {
		return nil, domain.ErrNotListed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *listingRepo) Create(ctx bCtx.Ctx, l *listing.Listing) error {
	if err := r.q.Insert(ctx, domain.TableListings, l); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrAlreadyListed
		}
		ctx.WithFields(log.Fields{
			"listing": l,
			"err":     err,
		}).Error("q.Insert failed")
		return err
	}
	r.invalidate(ctx, l.ToId())
	return nil
}

func (r *listingRepo) Patch(ctx bCtx.Ctx, id listing.ListingId, p listing.PatchableListing) error {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	updater, err := mongoclient.MakeBsonM(&p)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(ctx, domain.TableListings, sel, updater); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotListed
		}
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Patch failed")
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *listingRepo) Remove(ctx bCtx.Ctx, id listing.ListingId) error {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableListings, sel); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotListed
		}
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Remove failed")
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *listingRepo) invalidate(ctx bCtx.Ctx, id listing.ListingId) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Del(ctx, cacheKey(id)); err != nil && err != cache.ErrNotFound {
		ctx.WithField("err", err).Warn("cache.Del failed")
	}
}

func cacheKey(id listing.ListingId) string {
	return fmt.Sprintf("%d:%s:%s", id.ChainId, id.NftAddress.ToLower(), id.TokenId)
}
