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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 处理一条已经解码好的事件
type Handler[T any] func(ctx context.Context, evt T) error

// GeneralConsumer 从 topic 拉取 JSON 编码的事件并交给 Handler
type GeneralConsumer[T any] struct {
	consumer mq.Consumer
	topic    string
	handle   Handler[T]
	logger   *elog.Component
}

func NewGeneralConsumer[T any](q mq.MQ, topic, groupID string, handle Handler[T]) (*GeneralConsumer[T], error) {
	c, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s group=%s 的消费者失败: %w", topic, groupID, err)
	}
	return &GeneralConsumer[T]{
		consumer: c,
		topic:    topic,
		handle:   handle,
		logger:   elog.DefaultLogger.With(elog.FieldComponent(groupID)),
	}, nil
}

// Start 在后台循环消费，ctx 被取消之后退出
func (c *GeneralConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费事件失败",
					elog.String("topic", c.topic),
					elog.FieldErr(err))
			}
		}
	}()
}

// Consume 消费一条消息，无法解码的消息直接跳过
func (c *GeneralConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}
