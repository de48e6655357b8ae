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
	"net/http"
	"strconv"
	"strings"
)

const DefaultMaxRetries = 3

// RetryPolicy 根据已重试次数和本次响应决定是否再发一次，resp 为 nil 表示没有收到响应
type RetryPolicy func(retries int, resp *http.Response) bool

// ServerErrorRetryPolicy 只有收到 5xx 响应才重试，网络错误和 4xx 都不重试
func ServerErrorRetryPolicy(maxRetries int) RetryPolicy {
	return func(retries int, resp *http.Response) bool {
		return retries < maxRetries && resp != nil &&
			strings.HasPrefix(strconv.Itoa(resp.StatusCode), "5")
	}
}
