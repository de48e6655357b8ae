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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/survease/internal/survey/internal/domain"
	"github.com/ecodeclub/survease/internal/survey/internal/repository/dao"
	daomocks "github.com/ecodeclub/survease/internal/survey/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_FindByID(t *testing.T) {
	const orderID = int64(100)
	daoOrder := dao.Order{
		Id:            orderID,
		SN:            "SN-100",
		State:         "complete",
		CustomerEmail: "jane@example.com",
		Ctime:         1709280000000,
	}

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) dao.OrderDAO
		want    domain.Order
		wantErr error
	}{
		{
			name: "订单和账单地址都存在",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), orderID).Return(daoOrder, nil)
				d.EXPECT().FindAddress(gomock.Any(), orderID, dao.AddressTypeBilling).
					Return(dao.OrderAddress{FirstName: "Jane", LastName: "Doe"}, nil)
				return d
			},
			want: domain.Order{
				ID:             orderID,
				SN:             "SN-100",
				State:          domain.OrderStateComplete,
				CustomerEmail:  "jane@example.com",
				Ctime:          1709280000000,
				BillingAddress: &domain.BillingAddress{FirstName: "Jane", LastName: "Doe"},
			},
		},
		{
			name: "没有账单地址",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), orderID).Return(daoOrder, nil)
				d.EXPECT().FindAddress(gomock.Any(), orderID, dao.AddressTypeBilling).
					Return(dao.OrderAddress{}, dao.ErrRecordNotFound)
				return d
			},
			want: domain.Order{
				ID:            orderID,
				SN:            "SN-100",
				State:         domain.OrderStateComplete,
				CustomerEmail: "jane@example.com",
				Ctime:         1709280000000,
			},
		},
		{
			name: "订单不存在",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), orderID).Return(dao.Order{}, dao.ErrRecordNotFound)
				return d
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "查询账单地址出错",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), orderID).Return(daoOrder, nil)
				d.EXPECT().FindAddress(gomock.Any(), orderID, dao.AddressTypeBilling).
					Return(dao.OrderAddress{}, errors.New("mock db error"))
				return d
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewOrderRepository(tc.mock(ctrl))
			got, err := repo.FindByID(context.Background(), orderID)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
