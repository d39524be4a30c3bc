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

package ioc

import (
	"github.com/ecodeclub/agora/internal/email"
	"github.com/ecodeclub/agora/internal/notification"
	"github.com/ecodeclub/agora/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

func InitNotificationModule(q mq.MQ, userModule *user.Module, mailer email.Service) (*notification.Module, error) {
	cfg, err := initNotificationConfig()
	if err != nil {
		return nil, err
	}
	return notification.InitModule(q, userModule, mailer, cfg)
}

func initNotificationConfig() (notification.Config, error) {
	var cfg notification.Config
	err := econf.UnmarshalKey("notification.comment", &cfg)
	return cfg, err
}
