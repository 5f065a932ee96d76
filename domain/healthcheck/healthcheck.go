package healthcheck

import (
	"github.com/openmarket/goapi/base/ctx"
)

// Status reports reachability of each backing store. The marketplace cannot
// serve listings without mongo, nor auth nonces without redis.
type Status struct {
	Healthy bool   `json:"healthy"`
	Mongo   string `json:"mongo"`
	Redis   string `json:"redis"`
}

type HealthCheckUsecase interface {
	Check(context ctx.Ctx) Status
}

type HealthCheckRepo interface {
	PingMongo(context ctx.Ctx) error
	PingRedis(context ctx.Ctx) error
}
