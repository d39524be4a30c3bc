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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/agora/internal/user/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrUserNotCached = errors.New("用户资料未缓存")

const userExpiration = time.Minute * 15

type UserCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

type UserECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewUserECache 缓存前缀是 user:
func NewUserECache(c ecache.Cache) UserCache {
	return &UserECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		expiration: userExpiration,
	}
}

func (cache *UserECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(id))
	return errors.Wrap(err, "删除用户资料缓存失败")
}

func (cache *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	val := cache.cache.Get(ctx, cache.key(id))
	if val.KeyNotFound() {
		return domain.User{}, ErrUserNotCached
	}
	var u domain.User
	err := val.JSONScan(&u)
	return u, errors.Wrap(err, "解析用户资料缓存失败")
}

func (cache *UserECache) Set(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "序列化用户资料失败")
	}
	return cache.cache.Set(ctx, cache.key(u.Id), data, cache.expiration)
}

func (cache *UserECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
