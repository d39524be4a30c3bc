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
	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 给宿主业务登记评论对象，例如辩论创建的时候
type AdminHandler struct {
	svc service.CommentService
}

func NewAdminHandler(svc service.CommentService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/comment/commentable/register", ginx.B[RegisterRequest](h.Register))
	server.POST("/comment/commentable/detail", ginx.B[BizRequest](h.Detail))
}

func (h *AdminHandler) Register(ctx *ginx.Context, req RegisterRequest) (ginx.Result, error) {
	err := h.svc.RegisterCommentable(ctx.Request.Context(), domain.Commentable{
		TenantID:        req.TenantID,
		Biz:             req.Biz,
		BizID:           req.BizID,
		AuthorID:        req.AuthorID,
		AllowsAlignment: req.AllowsAlignment,
		AllowsVotes:     req.AllowsVotes,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Detail 没有登记过的对象返回的是默认能力
func (h *AdminHandler) Detail(ctx *ginx.Context, req BizRequest) (ginx.Result, error) {
	c, err := h.svc.Commentable(ctx.Request.Context(), req.TenantID, req.Biz, req.BizID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Commentable{
			TenantID:        c.TenantID,
			Biz:             c.Biz,
			BizID:           c.BizID,
			AuthorID:        c.AuthorID,
			AllowsAlignment: c.AllowsAlignment,
			AllowsVotes:     c.AllowsVotes,
		},
	}, nil
}
