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

import "time"

// Invitation 发送给 Survease 的问卷邀请，每次发送时临时构造，不落库
type Invitation struct {
	FirstName string
	LastName  string
	Email     string
	// 下单时间，秒
	RealDate int64
	// 期望 Survease 发出邀请邮件的时间，秒
	DispatchAt int64
}

// NewInvitation 调用方需要保证 order.BillingAddress 不为 nil
func NewInvitation(order Order, deferDays int, now time.Time) Invitation {
	if deferDays < 0 {
		deferDays = 0
	}
	return Invitation{
		FirstName:  order.BillingAddress.FirstName,
		LastName:   order.BillingAddress.LastName,
		Email:      order.CustomerEmail,
		RealDate:   time.UnixMilli(order.Ctime).Unix(),
		DispatchAt: now.UTC().AddDate(0, 0, deferDays).Unix(),
	}
}
