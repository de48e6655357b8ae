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

package domain

// OrderState 订单状态，取值与宿主电商平台保持一致
type OrderState string

const (
	OrderStateNew            OrderState = "new"
	OrderStatePendingPayment OrderState = "pending_payment"
	OrderStateProcessing     OrderState = "processing"
	OrderStateComplete       OrderState = "complete"
	OrderStateClosed         OrderState = "closed"
	OrderStateCanceled       OrderState = "canceled"
	OrderStateHolded         OrderState = "holded"
)

func (s OrderState) IsComplete() bool {
	return s == OrderStateComplete
}

type Order struct {
	ID            int64
	SN            string
	State         OrderState
	CustomerEmail string
	// 下单时间，毫秒
	Ctime int64
	// 可能为 nil，表示订单没有账单地址
	BillingAddress *BillingAddress
}

type BillingAddress struct {
	FirstName string
	LastName  string
}
