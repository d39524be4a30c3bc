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

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/group"
)

// AuthorResolver 确定评论的署名。调用方需要保证 uid 是已登录用户
type AuthorResolver interface {
	// Resolve groupID 为 0 表示以个人名义
	Resolve(ctx context.Context, tenantID, uid, groupID int64) (domain.Author, error)
}

type authorResolver struct {
	groupSvc group.Service
}

func NewAuthorResolver(groupSvc group.Service) AuthorResolver {
	return &authorResolver{groupSvc: groupSvc}
}

func (r *authorResolver) Resolve(ctx context.Context, tenantID, uid, groupID int64) (domain.Author, error) {
	author := domain.Author{User: domain.User{ID: uid}}
	if groupID <= 0 {
		return author, nil
	}
	g, err := r.groupSvc.FindByID(ctx, groupID)
	if errors.Is(err, group.ErrGroupNotFound) {
		return domain.Author{}, ErrNotVerifiedMember
	}
	if err != nil {
		return domain.Author{}, err
	}
	if g.TenantID != tenantID {
		return domain.Author{}, ErrNotVerifiedMember
	}
	ok, err := r.groupSvc.IsVerifiedMember(ctx, uid, groupID)
	if err != nil {
		return domain.Author{}, err
	}
	if !ok {
		return domain.Author{}, ErrNotVerifiedMember
	}
	author.GroupID = g.ID
	author.Name = g.Name
	return author, nil
}
