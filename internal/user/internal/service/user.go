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

	"github.com/ecodeclub/agora/internal/user/internal/domain"
	"github.com/ecodeclub/agora/internal/user/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 批量查询，不存在的用户直接忽略
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	// Save Id 为 0 的时候创建，否则只更新非 0 字段。
	// 登录之后第一次保存资料的时候，Id 对应的记录可能还不存在，此时会直接创建
	Save(ctx context.Context, u domain.User) (int64, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) Save(ctx context.Context, u domain.User) (int64, error) {
	if u.Id > 0 {
		return u.Id, svc.repo.Update(ctx, u)
	}
	return svc.repo.Create(ctx, u)
}
