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

package comment

import (
	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/event"
	"github.com/ecodeclub/agora/internal/comment/internal/service"
	"github.com/ecodeclub/agora/internal/comment/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.CommentService
type Commentable = domain.Commentable

// NotificationEvent 交给通知模块投递
type NotificationEvent = event.NotificationEvent

const NotificationTopic = event.NotificationTopic
