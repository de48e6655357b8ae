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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/survease/internal/survey/internal/domain"
	"github.com/ecodeclub/survease/internal/survey/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go Service,Logger
type Service interface {
	// Dispatch 宿主已经拿到订单时直接调用，立刻返回，发送结果只体现在日志里
	Dispatch(ctx context.Context, order domain.Order)
	// SubmitInvitation 只有订单ID时调用，订单在后台查找，同样立刻返回
	SubmitInvitation(ctx context.Context, orderID int64)
	// Wait 等待所有后台发送结束
	Wait()
}

// Logger *elog.Component 即满足
type Logger interface {
	Info(msg string, fields ...elog.Field)
	Warn(msg string, fields ...elog.Field)
	Error(msg string, fields ...elog.Field)
}

type dispatcher struct {
	cfg    domain.Config
	repo   repository.OrderRepository
	client *InvitationClient
	logger Logger
	wg     conc.WaitGroup
}

func NewService(cfg domain.Config, repo repository.OrderRepository, client *InvitationClient, logger Logger) Service {
	return &dispatcher{
		cfg:    cfg,
		repo:   repo,
		client: client,
		logger: logger,
	}
}

func (s *dispatcher) Dispatch(ctx context.Context, order domain.Order) {
	inv, ok := s.prepare(&order)
	if !ok {
		return
	}
	s.goSafe(ctx, func(ctx context.Context) {
		s.send(ctx, order.ID, inv)
	})
}

func (s *dispatcher) SubmitInvitation(ctx context.Context, orderID int64) {
	s.goSafe(ctx, func(ctx context.Context) {
		order, err := s.repo.FindByID(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			dispatchCounter.WithLabelValues(resultSkipped).Inc()
			return
		}
		if err != nil {
			dispatchCounter.WithLabelValues(resultFailed).Inc()
			s.logger.Error("Survease: 查找订单失败", elog.FieldErr(err), elog.Int64("order_id", orderID))
			return
		}
		inv, ok := s.prepare(&order)
		if !ok {
			return
		}
		s.send(ctx, order.ID, inv)
	})
}

func (s *dispatcher) Wait() {
	s.wg.Wait()
}

// prepare 校验订单和配置，不满足条件时不发送
func (s *dispatcher) prepare(order *domain.Order) (domain.Invitation, bool) {
	if !s.shouldSend(order) || order.BillingAddress == nil {
		dispatchCounter.WithLabelValues(resultSkipped).Inc()
		return domain.Invitation{}, false
	}
	if !s.cfg.Valid() {
		dispatchCounter.WithLabelValues(resultMisconfigured).Inc()
		s.logger.Warn("Survease: 缺少 Api Token 或 Survey Id, 无法发送问卷邀请", elog.Int64("order_id", order.ID))
		return domain.Invitation{}, false
	}
	return domain.NewInvitation(*order, s.cfg.DeferDays, time.Now()), true
}

func (s *dispatcher) shouldSend(order *domain.Order) bool {
	return order != nil && order.State.IsComplete()
}

func (s *dispatcher) send(ctx context.Context, orderID int64, inv domain.Invitation) {
	dispatchID := shortuuid.New()
	err := s.client.Submit(ctx, s.cfg.APIToken, s.cfg.SurveyID, []domain.Invitation{inv})
	if err != nil {
		dispatchCounter.WithLabelValues(resultFailed).Inc()
		s.logger.Error("Survease: 提交问卷邀请失败",
			elog.FieldErr(err),
			elog.String("dispatch_id", dispatchID),
			elog.Int64("order_id", orderID))
		return
	}
	dispatchCounter.WithLabelValues(resultSuccess).Inc()
	s.logger.Info("Survease: 问卷邀请已提交",
		elog.String("dispatch_id", dispatchID),
		elog.Int64("order_id", orderID),
		elog.Int64("dispatch_at", inv.DispatchAt))
}

// goSafe 后台任务不跟随调用方的取消，panic 也只记日志
func (s *dispatcher) goSafe(ctx context.Context, fn func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	s.wg.Go(func() {
		var pc panics.Catcher
		pc.Try(func() {
			fn(ctx)
		})
		if r := pc.Recovered(); r != nil {
			dispatchCounter.WithLabelValues(resultFailed).Inc()
			s.logger.Error("Survease: 问卷邀请任务异常", elog.FieldErr(r.AsError()))
		}
	})
}
