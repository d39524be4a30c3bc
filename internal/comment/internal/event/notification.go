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
	"github.com/ecodeclub/agora/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const NotificationTopic = "comment_notification_events"

// NotificationEvent 有人评论了你的内容，或者回复了你的评论
type NotificationEvent struct {
	// 收件人
	Recipient int64  `json:"recipient"`
	Kind      string `json:"kind"`
	Subject   string `json:"subject"`

	TenantID  int64  `json:"tenantID"`
	Biz       string `json:"biz"`
	BizID     int64  `json:"bizID"`
	CommentID int64  `json:"commentID"`
	ParentID  int64  `json:"parentID,omitempty"`

	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
}

func NewNotificationEventProducer(q mq.MQ) (mqx.Producer[NotificationEvent], error) {
	p, err := mqx.NewGeneralProducer[NotificationEvent](q, NotificationTopic)
	if err != nil {
		return nil, err
	}
	return p, nil
}
