package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/proceeds"
	"github.com/openmarket/goapi/service/query"
)

type proceedsRepo struct {
	q query.Mongo
}

func NewProceedsRepo(q query.Mongo) proceeds.Repo {
	return &proceedsRepo{q: q}
}

func (r *proceedsRepo) Get(ctx bCtx.Ctx, address domain.Address) (*proceeds.Proceeds, error) {
	res := &proceeds.Proceeds{}
	err := r.q.FindOne(ctx, domain.TableProceeds, bson.M{"address": address.ToLower()}, res)
	if err == query.ErrNotFound {
		// implicit zero balance, never received proceeds
		return &proceeds.Proceeds{Address: address.ToLower(), Balance: "0"}, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *proceedsRepo) Credit(ctx bCtx.Ctx, address domain.Address, amount domain.TokenAmount) error {
	if _, err := amount.BigInt(); err != nil {
		return err
	}
	// read-add-write must not interleave with a concurrent credit
	return r.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		cur, err := r.Get(c, address)
		if err != nil {
			return err
		}
		balance, err := cur.Balance.Add(amount)
		if err != nil {
			c.WithFields(log.Fields{
				"balance": cur.Balance,
				"amount":  amount,
				"err":     err,
			}).Error("balance.Add failed")
			return err
		}
		return r.put(c, address, balance)
	})
}

func (r *proceedsRepo) Zero(ctx bCtx.Ctx, address domain.Address) (domain.TokenAmount, error) {
	var prior domain.TokenAmount
	err := r.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		cur, err := r.Get(c, address)
		if err != nil {
			return err
		}
		prior = cur.Balance
		return r.put(c, address, "0")
	})
	if err != nil {
		return "", err
	}
	return prior, nil
}

func (r *proceedsRepo) put(ctx bCtx.Ctx, address domain.Address, balance domain.TokenAmount) error {
	sel := bson.M{"address": address.ToLower()}
	update := &proceeds.Proceeds{
		Address:   address.ToLower(),
		Balance:   balance,
		UpdatedAt: time.Now(),
	}
	if err := r.q.Upsert(ctx, domain.TableProceeds, sel, update); err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
