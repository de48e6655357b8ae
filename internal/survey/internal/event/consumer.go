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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/survease/internal/survey/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type OrderCompleteConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderCompleteConsumer(svc service.Service, q mq.MQ) (*OrderCompleteConsumer, error) {
	const groupID = "survey"
	consumer, err := q.Consumer(OrderCompleteEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderCompleteConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("survey.consumer")),
	}, nil
}

func (c *OrderCompleteConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费订单完成事件失败", elog.FieldErr(err))
			}
		}
	}()
}

// Consume 只返回消息本身的错误，发送邀请的结果不会返回
func (c *OrderCompleteConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt OrderCompleteEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.OrderID <= 0 {
		return fmt.Errorf("订单ID非法: %d", evt.OrderID)
	}
	c.svc.SubmitInvitation(ctx, evt.OrderID)
	return nil
}
