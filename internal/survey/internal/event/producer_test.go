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

package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCompleteEventProducer_Produce(t *testing.T) {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), OrderCompleteEventName, 1))

	consumer, err := q.Consumer(OrderCompleteEventName, "test")
	require.NoError(t, err)
	producer, err := NewOrderCompleteEventProducer(q)
	require.NoError(t, err)

	err = producer.Produce(context.Background(), OrderCompleteEvent{OrderID: 99})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)

	var evt OrderCompleteEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, OrderCompleteEvent{OrderID: 99}, evt)
}
