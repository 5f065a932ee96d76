package usecase

import (
	"github.com/openmarket/goapi/base/ctx"
	hcdomain "github.com/openmarket/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) hcdomain.Status {
	st := hcdomain.Status{Healthy: true, Mongo: "ok", Redis: "ok"}
	if err := im.repo.PingMongo(context); err != nil {
		st.Healthy = false
		st.Mongo = err.Error()
	}
	if err := im.repo.PingRedis(context); err != nil {
		st.Healthy = false
		st.Redis = err.Error()
	}
	return st
}
