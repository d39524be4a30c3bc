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

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const (
	commentableExpiration = 30 * time.Minute
)

var (
	ErrCommentableNotFound = errors.New("可评论对象缓存不存在")
)

//go:generate mockgen -source=./commentable.go -package=cachemocks -destination=./mocks/commentable.mock.go CommentableCache
type CommentableCache interface {
	Set(ctx context.Context, c domain.Commentable) error
	Get(ctx context.Context, tenantID int64, biz string, bizID int64) (domain.Commentable, error)
	Delete(ctx context.Context, tenantID int64, biz string, bizID int64) error
}

type commentableCache struct {
	ec ecache.Cache
}

func NewCommentableCache(ec ecache.Cache) CommentableCache {
	return &commentableCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "comment:",
		},
	}
}

func (c *commentableCache) Set(ctx context.Context, cm domain.Commentable) error {
	val, err := json.Marshal(cm)
	if err != nil {
		return errors.Wrap(err, "序列化可评论对象失败")
	}
	return c.ec.Set(ctx, c.key(cm.TenantID, cm.Biz, cm.BizID), string(val), commentableExpiration)
}

func (c *commentableCache) Get(ctx context.Context, tenantID int64, biz string, bizID int64) (domain.Commentable, error) {
	val := c.ec.Get(ctx, c.key(tenantID, biz, bizID))
	if val.KeyNotFound() {
		return domain.Commentable{}, ErrCommentableNotFound
	}
	if val.Err != nil {
		return domain.Commentable{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var cm domain.Commentable
	err := json.Unmarshal([]byte(val.Val.(string)), &cm)
	if err != nil {
		return domain.Commentable{}, errors.Wrap(err, "反序列化可评论对象失败")
	}
	return cm, nil
}

func (c *commentableCache) Delete(ctx context.Context, tenantID int64, biz string, bizID int64) error {
	_, err := c.ec.Delete(ctx, c.key(tenantID, biz, bizID))
	return err
}

func (c *commentableCache) key(tenantID int64, biz string, bizID int64) string {
	return fmt.Sprintf("commentable:%d:%s:%d", tenantID, biz, bizID)
}
