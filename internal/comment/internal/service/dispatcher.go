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
	"context"

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/event"
	"github.com/ecodeclub/agora/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
)

// CommentCreated 评论创建成功
type CommentCreated struct {
	Comment domain.Comment
	// 评论对象，用于确定作者
	Target domain.Commentable
	// 回复的父评论，直接评论的时候是零值
	Parent domain.Comment
}

// Dispatcher 根据新评论确定需要通知的人，并且把通知交给投递方。
// 发送失败只记录日志，不影响评论本身。
type Dispatcher interface {
	Dispatch(ctx context.Context, evt CommentCreated)
}

type notificationDispatcher struct {
	producer mqx.Producer[event.NotificationEvent]
	logger   *elog.Component
}

func NewNotificationDispatcher(producer mqx.Producer[event.NotificationEvent]) Dispatcher {
	return &notificationDispatcher{
		producer: producer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("comment.dispatcher")),
	}
}

func (d *notificationDispatcher) Dispatch(ctx context.Context, evt CommentCreated) {
	recipient, kind, ok := d.recipientOf(evt)
	if !ok {
		return
	}
	c := evt.Comment
	msg := event.NotificationEvent{
		Recipient:  recipient,
		Kind:       string(kind),
		Subject:    kind.Subject(),
		TenantID:   c.TenantID,
		Biz:        c.Biz,
		BizID:      c.BizID,
		CommentID:  c.ID,
		ParentID:   c.ParentID,
		AuthorName: c.Author.DisplayName(),
		Content:    c.Content,
	}
	if err := d.producer.Produce(ctx, msg); err != nil {
		d.logger.Error("发送评论通知失败",
			elog.FieldErr(err),
			elog.Int64("commentID", c.ID),
			elog.Int64("recipient", recipient))
	}
}

// recipientOf 回复通知父评论的作者，直接评论通知评论对象的作者，自己不通知自己
func (d *notificationDispatcher) recipientOf(evt CommentCreated) (int64, domain.NotificationKind, bool) {
	actor := evt.Comment.Author.User.ID
	if evt.Comment.IsReply() {
		recipient := evt.Parent.Author.User.ID
		return recipient, domain.NotificationNewReply, recipient > 0 && recipient != actor
	}
	if !evt.Target.HasAuthor() {
		return 0, "", false
	}
	recipient := evt.Target.AuthorID
	return recipient, domain.NotificationNewComment, recipient != actor
}
