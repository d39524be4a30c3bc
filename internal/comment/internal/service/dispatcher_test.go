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
	"errors"
	"testing"

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/event"
	mqxmocks "github.com/ecodeclub/agora/internal/pkg/mqx/mocks"
	"go.uber.org/mock/gomock"
)

func TestNotificationDispatcher_Dispatch(t *testing.T) {
	proposal := domain.Commentable{TenantID: 1, Biz: "proposal", BizID: 3, AuthorID: 2}
	parent := domain.Comment{
		ID: 10, TenantID: 1, Biz: "proposal", BizID: 3,
		Author: domain.Author{User: domain.User{ID: 5}},
	}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) *mqxmocks.MockProducer[event.NotificationEvent]
		evt  CommentCreated
	}{
		{
			name: "回复通知父评论的作者",
			mock: func(ctrl *gomock.Controller) *mqxmocks.MockProducer[event.NotificationEvent] {
				p := mqxmocks.NewMockProducer[event.NotificationEvent](ctrl)
				p.EXPECT().Produce(gomock.Any(), event.NotificationEvent{
					Recipient:  5,
					Kind:       "new_reply",
					Subject:    "new reply",
					TenantID:   1,
					Biz:        "proposal",
					BizID:      3,
					CommentID:  11,
					ParentID:   10,
					AuthorName: "路人甲",
					Content:    "谢谢",
				}).Times(1).Return(nil)
				return p
			},
			evt: CommentCreated{
				Comment: domain.Comment{
					ID: 11, TenantID: 1, Biz: "proposal", BizID: 3, ParentID: 10, AncestorID: 10,
					Author:  domain.Author{User: domain.User{ID: 7, NickName: "路人甲"}},
					Content: "谢谢",
				},
				Target: proposal,
				Parent: parent,
			},
		},
		{
			name: "回复自己不通知",
			mock: func(ctrl *gomock.Controller) *mqxmocks.MockProducer[event.NotificationEvent] {
				return mqxmocks.NewMockProducer[event.NotificationEvent](ctrl)
			},
			evt: CommentCreated{
				Comment: domain.Comment{
					ID: 11, TenantID: 1, Biz: "proposal", BizID: 3, ParentID: 10,
					Author: domain.Author{User: domain.User{ID: 5}},
				},
				Target: proposal,
				Parent: parent,
			},
		},
		{
			name: "直接评论通知评论对象的作者",
			mock: func(ctrl *gomock.Controller) *mqxmocks.MockProducer[event.NotificationEvent] {
				p := mqxmocks.NewMockProducer[event.NotificationEvent](ctrl)
				p.EXPECT().Produce(gomock.Any(), event.NotificationEvent{
					Recipient:  2,
					Kind:       "new_comment",
					Subject:    "new comment",
					TenantID:   1,
					Biz:        "proposal",
					BizID:      3,
					CommentID:  12,
					AuthorName: "公民协会",
					Content:    "支持",
				}).Times(1).Return(nil)
				return p
			},
			evt: CommentCreated{
				Comment: domain.Comment{
					ID: 12, TenantID: 1, Biz: "proposal", BizID: 3,
					Author:  domain.Author{User: domain.User{ID: 7}, GroupID: 3, Name: "公民协会"},
					Content: "支持",
				},
				Target: proposal,
			},
		},
		{
			name: "作者评论自己的对象不通知",
			mock: func(ctrl *gomock.Controller) *mqxmocks.MockProducer[event.NotificationEvent] {
				return mqxmocks.NewMockProducer[event.NotificationEvent](ctrl)
			},
			evt: CommentCreated{
				Comment: domain.Comment{
					ID: 12, TenantID: 1, Biz: "proposal", BizID: 3,
					Author: domain.Author{User: domain.User{ID: 2}},
				},
				Target: proposal,
			},
		},
		{
			name: "评论对象没有作者",
			mock: func(ctrl *gomock.Controller) *mqxmocks.MockProducer[event.NotificationEvent] {
				return mqxmocks.NewMockProducer[event.NotificationEvent](ctrl)
			},
			evt: CommentCreated{
				Comment: domain.Comment{
					ID: 12, TenantID: 1, Biz: "debate", BizID: 4,
					Author: domain.Author{User: domain.User{ID: 7}},
				},
				Target: domain.Commentable{TenantID: 1, Biz: "debate", BizID: 4},
			},
		},
		{
			name: "发送失败不影响调用方",
			mock: func(ctrl *gomock.Controller) *mqxmocks.MockProducer[event.NotificationEvent] {
				p := mqxmocks.NewMockProducer[event.NotificationEvent](ctrl)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
				return p
			},
			evt: CommentCreated{
				Comment: domain.Comment{
					ID: 12, TenantID: 1, Biz: "proposal", BizID: 3,
					Author: domain.Author{User: domain.User{ID: 7}},
				},
				Target: proposal,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := NewNotificationDispatcher(tc.mock(ctrl))
			d.Dispatch(context.Background(), tc.evt)
		})
	}
}
