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

	"github.com/ecodeclub/agora/internal/comment"
	"github.com/ecodeclub/agora/internal/notification/internal/service"
	"github.com/ecodeclub/agora/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const commentGroupID = "notification.comment"

// CommentEventConsumer 把评论通知事件转成邮件
type CommentEventConsumer struct {
	consumer *mqx.GeneralConsumer[comment.NotificationEvent]
}

func NewCommentEventConsumer(q mq.MQ, notifier service.CommentNotifier) (*CommentEventConsumer, error) {
	c, err := mqx.NewGeneralConsumer[comment.NotificationEvent](q, comment.NotificationTopic, commentGroupID, notifier.Notify)
	if err != nil {
		return nil, err
	}
	return &CommentEventConsumer{consumer: c}, nil
}

func (c *CommentEventConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *CommentEventConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx)
}
