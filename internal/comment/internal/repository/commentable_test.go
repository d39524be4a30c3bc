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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/repository/cache"
	cachemocks "github.com/ecodeclub/agora/internal/comment/internal/repository/cache/mocks"
	"github.com/ecodeclub/agora/internal/comment/internal/repository/dao"
	daomocks "github.com/ecodeclub/agora/internal/comment/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedCommentableRepository_Find(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.CommentableDAO, cache.CommentableCache)
		bizID   int64
		want    domain.Commentable
		wantErr error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.CommentableDAO, cache.CommentableCache) {
				d := daomocks.NewMockCommentableDAO(ctrl)
				c := cachemocks.NewMockCommentableCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1), "debate", int64(2)).Return(domain.Commentable{
					TenantID: 1, Biz: "debate", BizID: 2, AuthorID: 9, AllowsVotes: true,
				}, nil)
				return d, c
			},
			bizID: 2,
			want:  domain.Commentable{TenantID: 1, Biz: "debate", BizID: 2, AuthorID: 9, AllowsVotes: true},
		},
		{
			name: "未命中缓存，回写",
			mock: func(ctrl *gomock.Controller) (dao.CommentableDAO, cache.CommentableCache) {
				d := daomocks.NewMockCommentableDAO(ctrl)
				c := cachemocks.NewMockCommentableCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1), "debate", int64(2)).
					Return(domain.Commentable{}, cache.ErrCommentableNotFound)
				d.EXPECT().Find(gomock.Any(), int64(1), "debate", int64(2)).Return(dao.Commentable{
					ID: 5, TenantID: 1, Biz: "debate", BizID: 2, AuthorID: 9, AllowsAlignment: true,
				}, nil)
				c.EXPECT().Set(gomock.Any(), domain.Commentable{
					TenantID: 1, Biz: "debate", BizID: 2, AuthorID: 9, AllowsAlignment: true,
				}).Return(nil)
				return d, c
			},
			bizID: 2,
			want:  domain.Commentable{TenantID: 1, Biz: "debate", BizID: 2, AuthorID: 9, AllowsAlignment: true},
		},
		{
			name: "回写缓存失败不影响结果",
			mock: func(ctrl *gomock.Controller) (dao.CommentableDAO, cache.CommentableCache) {
				d := daomocks.NewMockCommentableDAO(ctrl)
				c := cachemocks.NewMockCommentableCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1), "debate", int64(2)).
					Return(domain.Commentable{}, cache.ErrCommentableNotFound)
				d.EXPECT().Find(gomock.Any(), int64(1), "debate", int64(2)).Return(dao.Commentable{
					TenantID: 1, Biz: "debate", BizID: 2, AllowsVotes: true,
				}, nil)
				c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("mock redis error"))
				return d, c
			},
			bizID: 2,
			want:  domain.Commentable{TenantID: 1, Biz: "debate", BizID: 2, AllowsVotes: true},
		},
		{
			// 没有 Set 的预期，写缓存会直接失败
			name: "未登记的对象返回默认能力，不写缓存",
			mock: func(ctrl *gomock.Controller) (dao.CommentableDAO, cache.CommentableCache) {
				d := daomocks.NewMockCommentableDAO(ctrl)
				c := cachemocks.NewMockCommentableCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1), "debate", int64(3)).
					Return(domain.Commentable{}, cache.ErrCommentableNotFound)
				d.EXPECT().Find(gomock.Any(), int64(1), "debate", int64(3)).
					Return(dao.Commentable{}, dao.ErrRecordNotFound)
				return d, c
			},
			bizID: 3,
			want:  domain.Commentable{TenantID: 1, Biz: "debate", BizID: 3},
		},
		{
			name: "查询数据库失败",
			mock: func(ctrl *gomock.Controller) (dao.CommentableDAO, cache.CommentableCache) {
				d := daomocks.NewMockCommentableDAO(ctrl)
				c := cachemocks.NewMockCommentableCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1), "debate", int64(2)).
					Return(domain.Commentable{}, cache.ErrCommentableNotFound)
				d.EXPECT().Find(gomock.Any(), int64(1), "debate", int64(2)).
					Return(dao.Commentable{}, errors.New("mock db error"))
				return d, c
			},
			bizID:   2,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedCommentableRepository(tc.mock(ctrl))
			got, err := repo.Find(context.Background(), 1, "debate", tc.bizID)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
