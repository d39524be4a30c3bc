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

	"github.com/ecodeclub/agora/internal/group/internal/domain"
	repomocks "github.com/ecodeclub/agora/internal/group/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockGroupRepository
		group   domain.UserGroup
		wantID  int64
		wantErr error
	}{
		{
			name: "新建",
			mock: func(ctrl *gomock.Controller) *repomocks.MockGroupRepository {
				repo := repomocks.NewMockGroupRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), domain.UserGroup{
					TenantID: 1,
					Name:     "辩论协会",
				}).Return(int64(3), nil)
				return repo
			},
			group:  domain.UserGroup{TenantID: 1, Name: "  辩论协会 "},
			wantID: 3,
		},
		{
			name: "名称为空",
			mock: func(ctrl *gomock.Controller) *repomocks.MockGroupRepository {
				return repomocks.NewMockGroupRepository(ctrl)
			},
			group:   domain.UserGroup{TenantID: 1, Name: "   "},
			wantErr: ErrEmptyName,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			id, err := svc.Save(context.Background(), tc.group)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestService_AddMember(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockGroupRepository
		wantErr error
	}{
		{
			name: "添加成功",
			mock: func(ctrl *gomock.Controller) *repomocks.MockGroupRepository {
				repo := repomocks.NewMockGroupRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).
					Return(domain.UserGroup{ID: 3, Name: "辩论协会"}, nil)
				repo.EXPECT().AddMember(gomock.Any(), int64(3), int64(7)).Return(nil)
				return repo
			},
		},
		{
			name: "用户组不存在",
			mock: func(ctrl *gomock.Controller) *repomocks.MockGroupRepository {
				repo := repomocks.NewMockGroupRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).
					Return(domain.UserGroup{}, ErrGroupNotFound)
				return repo
			},
			wantErr: ErrGroupNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.AddMember(context.Background(), 3, 7)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_IsVerifiedMember(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockGroupRepository
		uid     int64
		groupID int64
		want    bool
		wantErr error
	}{
		{
			name: "认证成员",
			mock: func(ctrl *gomock.Controller) *repomocks.MockGroupRepository {
				repo := repomocks.NewMockGroupRepository(ctrl)
				repo.EXPECT().IsVerifiedMember(gomock.Any(), int64(7), int64(3)).Return(true, nil)
				return repo
			},
			uid:     7,
			groupID: 3,
			want:    true,
		},
		{
			name: "非法参数不查询",
			mock: func(ctrl *gomock.Controller) *repomocks.MockGroupRepository {
				return repomocks.NewMockGroupRepository(ctrl)
			},
			uid:     7,
			groupID: 0,
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) *repomocks.MockGroupRepository {
				repo := repomocks.NewMockGroupRepository(ctrl)
				repo.EXPECT().IsVerifiedMember(gomock.Any(), int64(7), int64(3)).
					Return(false, errors.New("mock db error"))
				return repo
			},
			uid:     7,
			groupID: 3,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			ok, err := svc.IsVerifiedMember(context.Background(), tc.uid, tc.groupID)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
