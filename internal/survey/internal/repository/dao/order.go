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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

const AddressTypeBilling = "billing"

// OrderDAO 只读，订单和地址表归宿主电商平台所有
//go:generate mockgen -source=./order.go -package=daomocks -destination=./mocks/order.mock.go OrderDAO
type OrderDAO interface {
	FindByID(ctx context.Context, id int64) (Order, error)
	FindAddress(ctx context.Context, orderID int64, addressType string) (OrderAddress, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindAddress(ctx context.Context, orderID int64, addressType string) (OrderAddress, error) {
	var res OrderAddress
	err := d.db.WithContext(ctx).
		Where("order_id = ? AND address_type = ?", orderID, addressType).
		First(&res).Error
	return res, err
}

type Order struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN            string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	State         string `gorm:"type:varchar(32);not null;comment:订单状态 new/processing/complete/closed/canceled/holded"`
	CustomerEmail string `gorm:"type:varchar(255);not null;default:'';comment:下单邮箱"`
	Ctime         int64
	Utime         int64
}

func (Order) TableName() string {
	return "sales_orders"
}

type OrderAddress struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:地址自增ID"`
	OrderId     int64  `gorm:"not null;index:idx_order_id_type,priority:1;comment:订单自增ID"`
	AddressType string `gorm:"type:varchar(16);not null;index:idx_order_id_type,priority:2;comment:地址类型 billing/shipping"`
	FirstName   string `gorm:"type:varchar(255);not null;default:''"`
	LastName    string `gorm:"type:varchar(255);not null;default:''"`
	Ctime       int64
	Utime       int64
}

func (OrderAddress) TableName() string {
	return "sales_order_addresses"
}
