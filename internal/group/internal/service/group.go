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
	"strings"

	"github.com/ecodeclub/agora/internal/group/internal/domain"
	"github.com/ecodeclub/agora/internal/group/internal/repository"
)

var (
	ErrGroupNotFound = repository.ErrGroupNotFound
	ErrEmptyName     = errors.New("用户组名称不能为空")
)

//go:generate mockgen -source=./group.go -package=groupmocks -destination=../../mocks/group.mock.go Service
type Service interface {
	// Save 创建或者更新用户组，新建的用户组都是未认证的
	Save(ctx context.Context, g domain.UserGroup) (int64, error)
	// Verify 认证或者取消认证
	Verify(ctx context.Context, id int64, verified bool) error
	AddMember(ctx context.Context, groupID, uid int64) error
	RemoveMember(ctx context.Context, groupID, uid int64) error
	// IsVerifiedMember uid 是否是 groupID 的成员并且该用户组已认证
	IsVerifiedMember(ctx context.Context, uid, groupID int64) (bool, error)
	// VerifiedGroupsOf 用户可以用来署名的用户组
	VerifiedGroupsOf(ctx context.Context, tenantID, uid int64) ([]domain.UserGroup, error)
	FindByID(ctx context.Context, id int64) (domain.UserGroup, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.UserGroup, error)
}

type service struct {
	repo repository.GroupRepository
}

func NewService(repo repository.GroupRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, g domain.UserGroup) (int64, error) {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return 0, ErrEmptyName
	}
	return s.repo.Save(ctx, g)
}

func (s *service) Verify(ctx context.Context, id int64, verified bool) error {
	return s.repo.UpdateVerified(ctx, id, verified)
}

func (s *service) AddMember(ctx context.Context, groupID, uid int64) error {
	// 确保用户组存在
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		return err
	}
	return s.repo.AddMember(ctx, groupID, uid)
}

func (s *service) RemoveMember(ctx context.Context, groupID, uid int64) error {
	return s.repo.RemoveMember(ctx, groupID, uid)
}

func (s *service) IsVerifiedMember(ctx context.Context, uid, groupID int64) (bool, error) {
	if uid <= 0 || groupID <= 0 {
		return false, nil
	}
	return s.repo.IsVerifiedMember(ctx, uid, groupID)
}

func (s *service) VerifiedGroupsOf(ctx context.Context, tenantID, uid int64) ([]domain.UserGroup, error) {
	return s.repo.FindVerifiedByUid(ctx, tenantID, uid)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.UserGroup, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.UserGroup, error) {
	return s.repo.FindByIDs(ctx, ids)
}
