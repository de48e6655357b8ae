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

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/survease/internal/survey/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://app.survease.io/api/v1"

	defaultRetryInterval    = time.Second
	defaultRetryMaxInterval = 4 * time.Second
	// 错误信息里最多带上这么多字节的响应体
	maxErrorBodySize = 512

	instrumentationName = "internal/survey/service"
)

var (
	// ErrClientError 客户端错误（4xx），不应重试
	ErrClientError = errors.New("客户端错误")
	// ErrServerError 服务端错误（5xx）
	ErrServerError = errors.New("服务端错误")
	// ErrNetworkError 没有收到响应
	ErrNetworkError = errors.New("网络错误")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient 不跟随重定向，3xx 按失败处理
// 默认行为会把 POST 改成不带请求体的 GET，邀请其实没有提交
func NewHTTPClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

type invitationReq struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	RealDate   int64  `json:"realDate"`
	DispatchAt int64  `json:"dispatchAt"`
}

// InvitationClient 调用 Survease 的邀请接口
type InvitationClient struct {
	baseURL     string
	client      HTTPClient
	policy      RetryPolicy
	interval    time.Duration // 初始重试间隔
	maxInterval time.Duration // 最大重试间隔
	tracer      trace.Tracer
}

func NewInvitationClient(
	baseURL string,
	client HTTPClient,
	policy RetryPolicy,
	interval time.Duration,
	maxInterval time.Duration,
) *InvitationClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	if maxInterval <= 0 {
		maxInterval = defaultRetryMaxInterval
	}
	if maxInterval < interval {
		maxInterval = interval
	}
	return &InvitationClient{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		client:      client,
		policy:      policy,
		interval:    interval,
		maxInterval: maxInterval,
		tracer:      otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

// Submit 返回的 error 一定 wrap 了 ErrClientError、ErrServerError、ErrNetworkError 之一
func (c *InvitationClient) Submit(ctx context.Context, apiToken, surveyID string, invitations []domain.Invitation) error {
	ctx, span := c.tracer.Start(ctx, "survease.invitations.submit", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("survease.survey_id", surveyID),
		attribute.Int("survease.invitations", len(invitations)),
	)

	err := c.submit(ctx, apiToken, surveyID, invitations)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (c *InvitationClient) submit(ctx context.Context, apiToken, surveyID string, invitations []domain.Invitation) error {
	data, err := json.Marshal(slice.Map(invitations, func(idx int, src domain.Invitation) invitationReq {
		return invitationReq{
			FirstName:  src.FirstName,
			LastName:   src.LastName,
			Email:      src.Email,
			RealDate:   src.RealDate,
			DispatchAt: src.DispatchAt,
		}
	}))
	if err != nil {
		return fmt.Errorf("%w: 序列化请求失败: %w", ErrClientError, err)
	}

	// 重试与否由 policy 决定，strategy 只负责给出间隔
	strategy, err := retry.NewExponentialBackoffRetryStrategy(c.interval, c.maxInterval, math.MaxInt32)
	if err != nil {
		return fmt.Errorf("%w: 创建重试策略失败: %w", ErrClientError, err)
	}

	endpoint := fmt.Sprintf("%s/survey/%s/invitations", c.baseURL, url.PathEscape(surveyID))
	for retries := 0; ; retries++ {
		resp, err := c.doOnce(ctx, endpoint, apiToken, data)
		if !c.policy(retries, resp) {
			return c.toError(ctx, resp, err, retries)
		}
		discard(resp)

		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("%w: 超过最大重试次数, 已重试%d次", ErrServerError, retries)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: context已取消: %w", ErrNetworkError, ctx.Err())
		case <-time.After(next):
		}
	}
}

func (c *InvitationClient) doOnce(ctx context.Context, endpoint, apiToken string, data []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: 创建请求失败: %w", ErrClientError, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: 请求失败: %w", ErrNetworkError, err)
	}
	return resp, nil
}

func (c *InvitationClient) toError(ctx context.Context, resp *http.Response, err error, retries int) error {
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("http.response.status_code", resp.StatusCode),
		attribute.Int("survease.retries", retries),
	)
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: HTTP状态码=%d, 已重试%d次, 响应=%s", ErrServerError, resp.StatusCode, retries, body)
	}
	return fmt.Errorf("%w: HTTP状态码=%d, 响应=%s", ErrClientError, resp.StatusCode, body)
}

func discard(resp *http.Response) {
	if resp == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
