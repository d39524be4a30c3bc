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

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/repository/cache"
	"github.com/ecodeclub/agora/internal/comment/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./commentable.go -package=repomocks -destination=./mocks/commentable.mock.go CommentableRepository
type CommentableRepository interface {
	Register(ctx context.Context, c domain.Commentable) error
	// Find 没有注册过的对象返回零值：没有作者，不允许立场和投票
	Find(ctx context.Context, tenantID int64, biz string, bizID int64) (domain.Commentable, error)
}

type cachedCommentableRepository struct {
	dao    dao.CommentableDAO
	cache  cache.CommentableCache
	logger *elog.Component
}

func NewCachedCommentableRepository(d dao.CommentableDAO, c cache.CommentableCache) CommentableRepository {
	return &cachedCommentableRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *cachedCommentableRepository) Register(ctx context.Context, c domain.Commentable) error {
	err := r.dao.Upsert(ctx, dao.Commentable{
		TenantID:        c.TenantID,
		Biz:             c.Biz,
		BizID:           c.BizID,
		AuthorID:        c.AuthorID,
		AllowsAlignment: c.AllowsAlignment,
		AllowsVotes:     c.AllowsVotes,
	})
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, c.TenantID, c.Biz, c.BizID)
}

func (r *cachedCommentableRepository) Find(ctx context.Context, tenantID int64, biz string, bizID int64) (domain.Commentable, error) {
	res, err := r.cache.Get(ctx, tenantID, biz, bizID)
	if err == nil {
		return res, nil
	}
	entity, err := r.dao.Find(ctx, tenantID, biz, bizID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		// 未登记的对象不写缓存
		return domain.Commentable{TenantID: tenantID, Biz: biz, BizID: bizID}, nil
	}
	if err != nil {
		return domain.Commentable{}, err
	}
	res = r.toDomain(entity)
	if er := r.cache.Set(ctx, res); er != nil {
		r.logger.Warn("回写可评论对象缓存失败",
			elog.FieldErr(er),
			elog.String("biz", biz),
			elog.Int64("bizID", bizID))
	}
	return res, nil
}

func (r *cachedCommentableRepository) toDomain(c dao.Commentable) domain.Commentable {
	return domain.Commentable{
		TenantID:        c.TenantID,
		Biz:             c.Biz,
		BizID:           c.BizID,
		AuthorID:        c.AuthorID,
		AllowsAlignment: c.AllowsAlignment,
		AllowsVotes:     c.AllowsVotes,
	}
}
