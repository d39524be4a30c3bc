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
	"database/sql"

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrInvalidParentID = dao.ErrInvalidParentID
	ErrRecordNotFound  = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./comment.go -package=repomocks -destination=./mocks/comment.mock.go CommentRepository
type CommentRepository interface {
	// Create 创建直接评论（始祖评论），子评论及孙子评论
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	// ListFor 某一业务资源下的所有评论，包含所有层级，不保证顺序
	ListFor(ctx context.Context, tenantID int64, biz string, bizID int64) ([]domain.Comment, error)
	Count(ctx context.Context, tenantID int64, biz string, bizID int64) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Comment, error)
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(dao dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: dao}
}

func (r *commentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	c, err := r.dao.Create(ctx, r.toEntity(comment))
	if err != nil {
		return domain.Comment{}, err
	}
	res := r.toDomain(c)
	// 署名信息不落库，原样带回
	res.Author = comment.Author
	return res, nil
}

func (r *commentRepository) ListFor(ctx context.Context, tenantID int64, biz string, bizID int64) ([]domain.Comment, error) {
	found, err := r.dao.FindByBiz(ctx, tenantID, biz, bizID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) Count(ctx context.Context, tenantID int64, biz string, bizID int64) (int64, error) {
	return r.dao.CountByBiz(ctx, tenantID, biz, bizID)
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) toEntity(comment domain.Comment) dao.Comment {
	return dao.Comment{
		ID:        comment.ID,
		TenantID:  comment.TenantID,
		Uid:       comment.Author.User.ID,
		GroupID:   comment.Author.GroupID,
		Biz:       comment.Biz,
		BizID:     comment.BizID,
		ParentID:  sql.Null[int64]{V: comment.ParentID, Valid: comment.ParentID > 0},
		Content:   comment.Content,
		Alignment: comment.Alignment.String(),
	}
}

func (r *commentRepository) toDomain(comment dao.Comment) domain.Comment {
	return domain.Comment{
		ID:       comment.ID,
		TenantID: comment.TenantID,
		Author: domain.Author{
			User:    domain.User{ID: comment.Uid},
			GroupID: comment.GroupID,
		},
		Biz:        comment.Biz,
		BizID:      comment.BizID,
		ParentID:   comment.ParentID.V,
		AncestorID: comment.AncestorID.V,
		Content:    comment.Content,
		Alignment:  domain.Alignment(comment.Alignment),
		Ctime:      comment.Ctime,
	}
}
