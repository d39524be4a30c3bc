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

	"github.com/ecodeclub/agora/internal/comment"
	svcmocks "github.com/ecodeclub/agora/internal/notification/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentEventConsumer_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), comment.NotificationTopic, 1))

	evt := comment.NotificationEvent{
		Recipient:  2,
		Kind:       "new_reply",
		Subject:    "new reply",
		TenantID:   1,
		Biz:        "proposal",
		BizID:      3,
		CommentID:  11,
		ParentID:   10,
		AuthorName: "路人甲",
		Content:    "谢谢",
	}
	notifier := svcmocks.NewMockCommentNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), evt).Return(nil)

	consumer, err := NewCommentEventConsumer(q, notifier)
	require.NoError(t, err)

	producer, err := q.Producer(comment.NotificationTopic)
	require.NoError(t, err)
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.NoError(t, consumer.Consume(ctx))
}

func TestCommentEventConsumer_ConsumeBadMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), comment.NotificationTopic, 1))
	notifier := svcmocks.NewMockCommentNotifier(ctrl)

	consumer, err := NewCommentEventConsumer(q, notifier)
	require.NoError(t, err)

	producer, err := q.Producer(comment.NotificationTopic)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: []byte("not json")})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.Error(t, consumer.Consume(ctx))
}
