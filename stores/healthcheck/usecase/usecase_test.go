package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openmarket/goapi/base/ctx"
	mockHc "github.com/openmarket/goapi/domain/healthcheck/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite

	repo    *mockHc.HealthCheckRepo
	subject *impl
}

func (ts *testsuite) SetupTest() {
	ts.repo = &mockHc.HealthCheckRepo{}
	ts.subject = &impl{repo: ts.repo}
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestCheckHealthy() {
	ts.repo.On("PingMongo", mockCtx).Return(nil).Once()
	ts.repo.On("PingRedis", mockCtx).Return(nil).Once()

	st := ts.subject.Check(mockCtx)
	ts.True(st.Healthy)
	ts.Equal("ok", st.Mongo)
	ts.Equal("ok", st.Redis)
}

func (ts *testsuite) TestCheckMongoDown() {
	ts.repo.On("PingMongo", mockCtx).Return(errors.New("no reachable servers")).Once()
	ts.repo.On("PingRedis", mockCtx).Return(nil).Once()

	st := ts.subject.Check(mockCtx)
	ts.False(st.Healthy)
	ts.Equal("no reachable servers", st.Mongo)
	ts.Equal("ok", st.Redis)
}

func (ts *testsuite) TestCheckRedisDown() {
	ts.repo.On("PingMongo", mockCtx).Return(nil).Once()
	ts.repo.On("PingRedis", mockCtx).Return(errors.New("connection refused")).Once()

	st := ts.subject.Check(mockCtx)
	ts.False(st.Healthy)
	ts.Equal("ok", st.Mongo)
	ts.Equal("connection refused", st.Redis)
}
