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
	"fmt"

	"github.com/ecodeclub/survease/internal/survey/internal/domain"
	"github.com/ecodeclub/survease/internal/survey/internal/repository/dao"
)

var ErrOrderNotFound = errors.New("订单不存在")

//go:generate mockgen -source=./order.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	// FindByID 没有账单地址时 BillingAddress 为 nil，不返回错误
	FindByID(ctx context.Context, id int64) (domain.Order, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, id)
	}
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o)
	addr, err := r.dao.FindAddress(ctx, id, dao.AddressTypeBilling)
	switch {
	case err == nil:
		res.BillingAddress = &domain.BillingAddress{
			FirstName: addr.FirstName,
			LastName:  addr.LastName,
		}
	case errors.Is(err, dao.ErrRecordNotFound):
	default:
		return domain.Order{}, fmt.Errorf("查找账单地址失败: %w", err)
	}
	return res, nil
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:            o.Id,
		SN:            o.SN,
		State:         domain.OrderState(o.State),
		CustomerEmail: o.CustomerEmail,
		Ctime:         o.Ctime,
	}
}
