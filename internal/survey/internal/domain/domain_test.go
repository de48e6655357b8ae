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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDeferDays(t *testing.T) {
	testCases := []struct {
		name string
		val  any
		want int
	}{
		{name: "未配置", val: nil, want: 0},
		{name: "整数", val: 5, want: 5},
		{name: "字符串数字", val: "7", want: 7},
		{name: "负数", val: -3, want: 0},
		{name: "负数字符串", val: "-3", want: 0},
		{name: "非数字", val: "abc", want: 0},
		{name: "空字符串", val: "", want: 0},
		{name: "前导零按十进制", val: "010", want: 10},
		{name: "前导零非八进制", val: "08", want: 8},
		{name: "十六进制不识别", val: "0x10", want: 0},
		{name: "带空格", val: " 4 ", want: 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDeferDays(tc.val))
		})
	}
}

func TestNewInvitation(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ctime := time.Date(2024, 2, 28, 8, 30, 0, 0, time.UTC)
	order := Order{
		ID:            1,
		State:         OrderStateComplete,
		CustomerEmail: "jane@example.com",
		Ctime:         ctime.UnixMilli(),
		BillingAddress: &BillingAddress{
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}

	testCases := []struct {
		name      string
		deferDays int
		want      Invitation
	}{
		{
			name:      "不延迟",
			deferDays: 0,
			want: Invitation{
				FirstName:  "Jane",
				LastName:   "Doe",
				Email:      "jane@example.com",
				RealDate:   ctime.Unix(),
				DispatchAt: now.Unix(),
			},
		},
		{
			name:      "延迟5天",
			deferDays: 5,
			want: Invitation{
				FirstName:  "Jane",
				LastName:   "Doe",
				Email:      "jane@example.com",
				RealDate:   ctime.Unix(),
				DispatchAt: now.Add(5 * 24 * time.Hour).Unix(),
			},
		},
		{
			name:      "负数按0处理",
			deferDays: -2,
			want: Invitation{
				FirstName:  "Jane",
				LastName:   "Doe",
				Email:      "jane@example.com",
				RealDate:   ctime.Unix(),
				DispatchAt: now.Unix(),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewInvitation(order, tc.deferDays, now))
		})
	}
}

func TestOrderState_IsComplete(t *testing.T) {
	assert.True(t, OrderStateComplete.IsComplete())
	for _, s := range []OrderState{OrderStateNew, OrderStatePendingPayment, OrderStateProcessing,
		OrderStateClosed, OrderStateCanceled, OrderStateHolded} {
		assert.False(t, s.IsComplete(), string(s))
	}
}
