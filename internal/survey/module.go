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


package survey

import (
	"github.com/ecodeclub/survease/internal/survey/internal/domain"
	"github.com/ecodeclub/survease/internal/survey/internal/event"
	"github.com/ecodeclub/survease/internal/survey/internal/service"
	"github.com/ecodeclub/survease/internal/survey/internal/web"
)

type (
	Handler               = web.Handler
	Service               = service.Service
	Order                 = domain.Order
	OrderState            = domain.OrderState
	BillingAddress        = domain.BillingAddress
	Config                = domain.Config
	OrderCompleteEvent    = event.OrderCompleteEvent
	OrderCompleteConsumer = event.OrderCompleteConsumer
)

const (
	OrderStateComplete     = domain.OrderStateComplete
	OrderCompleteEventName = event.OrderCompleteEventName
	HookTokenHeader        = web.HookTokenHeader
)

type Module struct {
	Svc                   Service
	Hdl                   *Handler
	OrderCompleteConsumer *OrderCompleteConsumer
}
