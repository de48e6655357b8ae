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
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

type Config struct {
	APIToken string
	SurveyID string
	// 延迟发送的天数
	DeferDays int

	BaseURL          string
	RetryInterval    time.Duration
	RetryMaxInterval time.Duration
}

// Valid Token 和 问卷ID 缺一不可
func (c Config) Valid() bool {
	return c.APIToken != "" && c.SurveyID != ""
}

// ParseDeferDays 兼容数字和字符串两种写法，负数、非数字和未配置都按 0 天处理
// 字符串一律按十进制解析，"010" 是 10 天
func ParseDeferDays(val any) int {
	var (
		days int
		err  error
	)
	if str, ok := val.(string); ok {
		days, err = strconv.Atoi(strings.TrimSpace(str))
	} else {
		days, err = cast.ToIntE(val)
	}
	if err != nil || days < 0 {
		return 0
	}
	return days
}
