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

	"github.com/ecodeclub/agora/internal/group/internal/domain"
	"github.com/ecodeclub/agora/internal/group/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrGroupNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./group.go -package=repomocks -destination=./mocks/group.mock.go GroupRepository
type GroupRepository interface {
	Save(ctx context.Context, g domain.UserGroup) (int64, error)
	UpdateVerified(ctx context.Context, id int64, verified bool) error
	FindByID(ctx context.Context, id int64) (domain.UserGroup, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.UserGroup, error)
	FindVerifiedByUid(ctx context.Context, tenantID, uid int64) ([]domain.UserGroup, error)
	AddMember(ctx context.Context, groupID, uid int64) error
	RemoveMember(ctx context.Context, groupID, uid int64) error
	IsVerifiedMember(ctx context.Context, uid, groupID int64) (bool, error)
}

type groupRepository struct {
	dao dao.GroupDAO
}

func NewGroupRepository(d dao.GroupDAO) GroupRepository {
	return &groupRepository{dao: d}
}

func (r *groupRepository) Save(ctx context.Context, g domain.UserGroup) (int64, error) {
	return r.dao.Save(ctx, dao.UserGroup{
		ID:       g.ID,
		TenantID: g.TenantID,
		Name:     g.Name,
	})
}

func (r *groupRepository) UpdateVerified(ctx context.Context, id int64, verified bool) error {
	return r.dao.UpdateVerified(ctx, id, verified)
}

func (r *groupRepository) FindByID(ctx context.Context, id int64) (domain.UserGroup, error) {
	g, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.UserGroup{}, err
	}
	return r.toDomain(g), nil
}

func (r *groupRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.UserGroup, error) {
	gs, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(gs, func(_ int, src dao.UserGroup) domain.UserGroup {
		return r.toDomain(src)
	}), nil
}

func (r *groupRepository) FindVerifiedByUid(ctx context.Context, tenantID, uid int64) ([]domain.UserGroup, error) {
	gs, err := r.dao.FindVerifiedByUid(ctx, tenantID, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(gs, func(_ int, src dao.UserGroup) domain.UserGroup {
		return r.toDomain(src)
	}), nil
}

func (r *groupRepository) AddMember(ctx context.Context, groupID, uid int64) error {
	return r.dao.AddMember(ctx, dao.Membership{GroupID: groupID, Uid: uid})
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, uid int64) error {
	return r.dao.RemoveMember(ctx, groupID, uid)
}

func (r *groupRepository) IsVerifiedMember(ctx context.Context, uid, groupID int64) (bool, error) {
	cnt, err := r.dao.CountVerifiedMembership(ctx, uid, groupID)
	return cnt > 0, err
}

func (r *groupRepository) toDomain(g dao.UserGroup) domain.UserGroup {
	return domain.UserGroup{
		ID:       g.ID,
		TenantID: g.TenantID,
		Name:     g.Name,
		Verified: g.Verified,
		Ctime:    g.Ctime,
		Utime:    g.Utime,
	}
}
