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

	"github.com/ecodeclub/agora/internal/group/internal/domain"
	"github.com/ecodeclub/agora/internal/group/internal/errs"
	"github.com/ecodeclub/agora/internal/group/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/group")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/verify", ginx.B[VerifyReq](h.Verify))
	g.POST("/member/add", ginx.B[MemberReq](h.AddMember))
	g.POST("/member/remove", ginx.B[MemberReq](h.RemoveMember))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), domain.UserGroup{
		ID:       req.ID,
		TenantID: req.TenantID,
		Name:     req.Name,
	})
	switch {
	case errors.Is(err, service.ErrEmptyName):
		return ginx.Result{Code: errs.NameEmpty.Code, Msg: errs.NameEmpty.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Data: id}, nil
	}
}

func (h *AdminHandler) Verify(ctx *ginx.Context, req VerifyReq) (ginx.Result, error) {
	return h.result(h.svc.Verify(ctx.Request.Context(), req.ID, req.Verified))
}

func (h *AdminHandler) AddMember(ctx *ginx.Context, req MemberReq) (ginx.Result, error) {
	return h.result(h.svc.AddMember(ctx.Request.Context(), req.GroupID, req.Uid))
}

func (h *AdminHandler) RemoveMember(ctx *ginx.Context, req MemberReq) (ginx.Result, error) {
	return h.result(h.svc.RemoveMember(ctx.Request.Context(), req.GroupID, req.Uid))
}

func (h *AdminHandler) result(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		return ginx.Result{Code: errs.GroupNotFound.Code, Msg: errs.GroupNotFound.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}
