package repository

import (
	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/database/mongoclient"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/activity"
	"github.com/openmarket/goapi/domain/listing"
	"github.com/openmarket/goapi/service/query"
)

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) activity.Repo {
	return &activityRepo{q: q}
}

func (r *activityRepo) Insert(ctx bCtx.Ctx, a *activity.Activity) error {
	if err := r.q.Insert(ctx, domain.TableActivities, a); err != nil {
		ctx.WithFields(log.Fields{
			"activity": a,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepo) FindByToken(ctx bCtx.Ctx, id listing.ListingId, offset, limit int) ([]activity.Activity, error) {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := []activity.Activity{}
	if err := r.q.Search(ctx, domain.TableActivities, offset, limit, "-time", sel, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
