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

package web

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/survease/internal/survey/internal/event"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const HookTokenHeader = "X-Survease-Hook-Token"

var _ ginx.Handler = &Handler{}

type Handler struct {
	producer event.OrderCompleteEventProducer
	// 为空表示不校验
	hookToken string
	logger    *elog.Component
}

func NewHandler(producer event.OrderCompleteEventProducer, hookToken string) *Handler {
	return &Handler{
		producer:  producer,
		hookToken: hookToken,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("survey.web")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/survey", h.checkHookToken())
	g.POST("/invitation/submit", ginx.B[SubmitInvitationReq](h.SubmitInvitation))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// SubmitInvitation 只负责把事件投递出去，邀请是否发送成功不会反馈给调用方
func (h *Handler) SubmitInvitation(ctx *ginx.Context, req SubmitInvitationReq) (ginx.Result, error) {
	if req.OrderID <= 0 {
		return invalidParamResult, nil
	}
	err := h.producer.Produce(ctx.Request.Context(), event.OrderCompleteEvent{OrderID: req.OrderID})
	if err != nil {
		return systemErrorResult, fmt.Errorf("发送订单完成事件失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) checkHookToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if h.hookToken == "" {
			return
		}
		token := ctx.GetHeader(HookTokenHeader)
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.hookToken)) != 1 {
			h.logger.Warn("非法调用问卷邀请接口", elog.String("ip", ctx.ClientIP()))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}
}
