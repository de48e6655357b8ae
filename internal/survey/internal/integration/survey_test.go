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


//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/survease/internal/survey/internal/domain"
	"github.com/ecodeclub/survease/internal/survey/internal/event"
	"github.com/ecodeclub/survease/internal/survey/internal/repository"
	"github.com/ecodeclub/survease/internal/survey/internal/repository/dao"
	"github.com/ecodeclub/survease/internal/survey/internal/service"
	"github.com/ecodeclub/survease/internal/survey/internal/web"
	"github.com/ecodeclub/survease/internal/test"
	testioc "github.com/ecodeclub/survease/internal/test/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const hookToken = "hook-token"

type invitation struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	RealDate   int64  `json:"realDate"`
	DispatchAt int64  `json:"dispatchAt"`
}

type SurveyTestSuite struct {
	suite.Suite
	db       *gorm.DB
	server   *egin.Component
	svc      service.Service
	consumer *event.OrderCompleteConsumer

	mu       sync.Mutex
	received [][]invitation
	survease *httptest.Server
}

func TestSurveyModule(t *testing.T) {
	suite.Run(t, new(SurveyTestSuite))
}

func (s *SurveyTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))

	s.survease = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []invitation
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		s.received = append(s.received, body)
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))

	cfg := domain.Config{
		APIToken:  "token",
		SurveyID:  "survey-1",
		DeferDays: 3,
		BaseURL:   s.survease.URL,
	}
	client := service.NewInvitationClient(cfg.BaseURL, s.survease.Client(),
		service.ServerErrorRetryPolicy(service.DefaultMaxRetries),
		10*time.Millisecond, 20*time.Millisecond)
	repo := repository.NewOrderRepository(dao.NewOrderGORMDAO(s.db))
	s.svc = service.NewService(cfg, repo, client, elog.DefaultLogger)

	q := testioc.InitMQ()
	producer, err := event.NewOrderCompleteEventProducer(q)
	require.NoError(s.T(), err)
	s.consumer, err = event.NewOrderCompleteConsumer(s.svc, q)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	web.NewHandler(producer, hookToken).PublicRoutes(server.Engine)
	s.server = server
}

func (s *SurveyTestSuite) TearDownSuite() {
	s.survease.Close()
}

func (s *SurveyTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `sales_orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `sales_order_addresses`").Error
	require.NoError(s.T(), err)
	s.mu.Lock()
	s.received = nil
	s.mu.Unlock()
}

func (s *SurveyTestSuite) TestRepository_FindByID() {
	t := s.T()
	ctx := context.Background()
	s.insertOrder(dao.Order{Id: 1, SN: "SN1", State: "complete", CustomerEmail: "a@x.io", Ctime: 1700000000000},
		&dao.OrderAddress{FirstName: "Ann", LastName: "Lee"})
	s.insertOrder(dao.Order{Id: 2, SN: "SN2", State: "complete", CustomerEmail: "b@x.io", Ctime: 1700000000000}, nil)

	repo := repository.NewOrderRepository(dao.NewOrderGORMDAO(s.db))
	order, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Order{
		ID:             1,
		SN:             "SN1",
		State:          domain.OrderStateComplete,
		CustomerEmail:  "a@x.io",
		Ctime:          1700000000000,
		BillingAddress: &domain.BillingAddress{FirstName: "Ann", LastName: "Lee"},
	}, order)

	order, err = repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, order.BillingAddress)

	_, err = repo.FindByID(ctx, 3)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func (s *SurveyTestSuite) TestSubmitInvitation() {
	s.insertOrder(dao.Order{Id: 11, SN: "SN11", State: "complete", CustomerEmail: "c@x.io", Ctime: 1700000000000},
		&dao.OrderAddress{FirstName: "Cai", LastName: "Wen"})
	s.insertOrder(dao.Order{Id: 12, SN: "SN12", State: "processing", CustomerEmail: "d@x.io", Ctime: 1700000000000},
		&dao.OrderAddress{FirstName: "Du", LastName: "Fu"})

	testCases := []struct {
		name    string
		orderID int64
		want    []invitation
	}{
		{
			name:    "完成的订单发送邀请",
			orderID: 11,
			want: []invitation{
				{FirstName: "Cai", LastName: "Wen", Email: "c@x.io", RealDate: 1700000000},
			},
		},
		{
			name:    "未完成的订单不发送",
			orderID: 12,
		},
		{
			name:    "订单不存在",
			orderID: 13,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.mu.Lock()
			s.received = nil
			s.mu.Unlock()

			body, err := json.Marshal(web.SubmitInvitationReq{OrderID: tc.orderID})
			require.NoError(t, err)
			req, err := http.NewRequest(http.MethodPost, "/survey/invitation/submit", bytes.NewReader(body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(web.HookTokenHeader, hookToken)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, "OK", recorder.MustScan().Msg)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			require.NoError(t, s.consumer.Consume(ctx))
			s.svc.Wait()

			s.mu.Lock()
			defer s.mu.Unlock()
			if tc.want == nil {
				assert.Empty(t, s.received)
				return
			}
			require.Len(t, s.received, 1)
			got := s.received[0]
			require.Len(t, got, 1)
			// 延迟 3 天
			assert.InDelta(t, time.Now().AddDate(0, 0, 3).Unix(), got[0].DispatchAt, 5)
			got[0].DispatchAt = 0
			assert.Equal(t, tc.want, got)
		})
	}
}

func (s *SurveyTestSuite) insertOrder(order dao.Order, addr *dao.OrderAddress) {
	t := s.T()
	require.NoError(t, s.db.Create(&order).Error)
	if addr == nil {
		return
	}
	addr.OrderId = order.Id
	addr.AddressType = dao.AddressTypeBilling
	require.NoError(t, s.db.Create(addr).Error)
}
