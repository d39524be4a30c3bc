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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/errs"
	"github.com/ecodeclub/agora/internal/comment/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// PublicRoutes 未登录也可以查看评论
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/comment/list", ginx.B[ListRequest](h.List))
	server.POST("/comment/count", ginx.B[BizRequest](h.Count))
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/create", ginx.BS[CreateRequest](h.Create))
	group.POST("/vote", ginx.BS[VoteRequest](h.Vote))
	// 和 /comment/list 一样，额外带上自己的投票
	group.POST("/list/mine", ginx.BS[ListRequest](h.ListMine))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Create(ctx.Request.Context(), domain.Comment{
		TenantID: req.TenantID,
		Author: domain.Author{
			User:    domain.User{ID: sess.Claims().Uid},
			GroupID: req.GroupID,
		},
		Biz:       req.Biz,
		BizID:     req.BizID,
		ParentID:  req.ParentID,
		Content:   req.Content,
		Alignment: domain.Alignment(req.Alignment),
	})
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{
		Data: h.toVO(c),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListRequest) (ginx.Result, error) {
	return h.list(ctx, req, 0)
}

func (h *Handler) ListMine(ctx *ginx.Context, req ListRequest, sess session.Session) (ginx.Result, error) {
	return h.list(ctx, req, sess.Claims().Uid)
}

func (h *Handler) list(ctx *ginx.Context, req ListRequest, viewer int64) (ginx.Result, error) {
	comments, total, err := h.svc.List(ctx.Request.Context(), service.ListQuery{
		TenantID: req.TenantID,
		Biz:      req.Biz,
		BizID:    req.BizID,
		Order:    domain.ParseOrder(req.Order),
		Viewer:   viewer,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找%q业务的%d资源的评论失败: %w", req.Biz, req.BizID, err)
	}
	return ginx.Result{
		Data: CommentList{
			List:  h.toVOs(comments),
			Total: total,
		},
	}, nil
}

func (h *Handler) Count(ctx *ginx.Context, req BizRequest) (ginx.Result, error) {
	cnt, err := h.svc.Count(ctx.Request.Context(), req.TenantID, req.Biz, req.BizID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: cnt}, nil
}

func (h *Handler) Vote(ctx *ginx.Context, req VoteRequest, sess session.Session) (ginx.Result, error) {
	summary, err := h.svc.Vote(ctx.Request.Context(), req.TenantID, domain.Vote{
		CommentID: req.CommentID,
		Uid:       sess.Claims().Uid,
		Weight:    req.Weight,
	})
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{
		Data: h.toVotes(summary),
	}, nil
}

// errorResult 业务错误返回对应的错误码，其余的都是系统错误
func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return ginx.Result{Code: errs.ValidationError.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrAuthorization):
		return ginx.Result{Code: errs.AuthorizationError.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrCommentNotFound):
		return ginx.Result{Code: errs.CommentNotFound.Code, Msg: errs.CommentNotFound.Msg}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toVOs(comments []domain.Comment) []Comment {
	return slice.Map(comments, func(_ int, src domain.Comment) Comment {
		return h.toVO(src)
	})
}

func (h *Handler) toVO(c domain.Comment) Comment {
	res := Comment{
		ID:         c.ID,
		ParentID:   c.ParentID,
		AncestorID: c.AncestorID,
		Content:    c.Content,
		Alignment:  c.Alignment.String(),
		Author: Author{
			User: User{
				ID:       c.Author.User.ID,
				Nickname: c.Author.User.NickName,
				Avatar:   c.Author.User.Avatar,
			},
			GroupID: c.Author.GroupID,
			Name:    c.Author.DisplayName(),
		},
		Biz:   c.Biz,
		BizID: c.BizID,
		Ctime: c.Ctime,
		Votes: h.toVotes(c.Votes),
	}
	if len(c.Replies) > 0 {
		res.Replies = h.toVOs(c.Replies)
	}
	return res
}

func (h *Handler) toVotes(v domain.VoteSummary) Votes {
	return Votes{
		Up:       v.Up,
		Down:     v.Down,
		Score:    v.Score,
		MyWeight: v.MyWeight,
	}
}
