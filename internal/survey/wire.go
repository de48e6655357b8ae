// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package survey

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/survease/internal/survey/internal/domain"
	"github.com/ecodeclub/survease/internal/survey/internal/event"
	"github.com/ecodeclub/survease/internal/survey/internal/repository"
	"github.com/ecodeclub/survease/internal/survey/internal/repository/dao"
	"github.com/ecodeclub/survease/internal/survey/internal/service"
	"github.com/ecodeclub/survease/internal/survey/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

var ServiceSet = wire.NewSet(
	initConfig,
	initLogger,
	initInvitationClient,
	dao.NewOrderGORMDAO,
	repository.NewOrderRepository,
	service.NewService,
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		ServiceSet,
		event.NewOrderCompleteEventProducer,
		event.NewOrderCompleteConsumer,
		initHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initConfig() domain.Config {
	return domain.Config{
		APIToken:         econf.GetString("survey.authorization.api_token"),
		SurveyID:         econf.GetString("survey.general.survey_id"),
		DeferDays:        domain.ParseDeferDays(econf.Get("survey.general.defer")),
		BaseURL:          econf.GetString("survey.client.baseURL"),
		RetryInterval:    econf.GetDuration("survey.client.retry.interval"),
		RetryMaxInterval: econf.GetDuration("survey.client.retry.maxInterval"),
	}
}

func initInvitationClient(cfg domain.Config) *service.InvitationClient {
	return service.NewInvitationClient(cfg.BaseURL, service.NewHTTPClient(),
		service.ServerErrorRetryPolicy(service.DefaultMaxRetries),
		cfg.RetryInterval, cfg.RetryMaxInterval)
}

func initLogger() service.Logger {
	return elog.DefaultLogger.With(elog.FieldComponent("survey"))
}

// initHandler 没有配置 survey.hook.token 时接口不校验 token
func initHandler(producer event.OrderCompleteEventProducer) *web.Handler {
	return web.NewHandler(producer, econf.GetString("survey.hook.token"))
}
