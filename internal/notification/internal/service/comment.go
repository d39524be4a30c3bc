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
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/agora/internal/comment"
	"github.com/ecodeclub/agora/internal/email"
	"github.com/ecodeclub/agora/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

// 邮件里面评论内容最多展示的字节数
const excerptLimit = 300

type Config struct {
	// LinkTemplate 评论链接，支持 {tenantID} {biz} {bizID} {commentID} 占位符
	LinkTemplate string `yaml:"linkTemplate"`
	FromAlias    string `yaml:"fromAlias"`
}

//go:generate mockgen -source=./comment.go -package=svcmocks -destination=../../mocks/comment.mock.go CommentNotifier
type CommentNotifier interface {
	Notify(ctx context.Context, evt comment.NotificationEvent) error
}

type commentNotifier struct {
	userSvc user.UserService
	mailer  email.Service
	cfg     Config
	tmpl    *template.Template
	logger  *elog.Component
}

func NewCommentNotifier(userSvc user.UserService, mailer email.Service, cfg Config) CommentNotifier {
	return &commentNotifier{
		userSvc: userSvc,
		mailer:  mailer,
		cfg:     cfg,
		tmpl:    template.Must(template.New("comment").Parse(commentMailTemplate)),
		logger:  elog.DefaultLogger.With(elog.FieldComponent("notification.comment")),
	}
}

func (n *commentNotifier) Notify(ctx context.Context, evt comment.NotificationEvent) error {
	recipient, err := n.userSvc.Profile(ctx, evt.Recipient)
	if err != nil {
		return fmt.Errorf("查找收件人失败 uid=%d: %w", evt.Recipient, err)
	}
	if recipient.Email == "" {
		// 没有邮箱的用户收不到通知，不算失败
		n.logger.Warn("收件人没有邮箱，跳过通知",
			elog.Int64("uid", evt.Recipient),
			elog.Int64("commentID", evt.CommentID))
		return nil
	}
	body, err := n.render(recipient, evt)
	if err != nil {
		return err
	}
	return n.mailer.SendMail(ctx, email.Mail{
		FromAlias: n.cfg.FromAlias,
		To:        recipient.Email,
		Subject:   evt.Subject,
		Body:      body,
	})
}

type commentMailData struct {
	Nickname   string
	AuthorName string
	Reply      bool
	Excerpt    string
	Link       string
}

func (n *commentNotifier) render(recipient user.User, evt comment.NotificationEvent) (string, error) {
	var buf bytes.Buffer
	err := n.tmpl.Execute(&buf, commentMailData{
		Nickname:   recipient.Nickname,
		AuthorName: evt.AuthorName,
		Reply:      evt.ParentID > 0,
		Excerpt:    excerpt(evt.Content, excerptLimit),
		Link:       n.link(evt),
	})
	if err != nil {
		return "", fmt.Errorf("渲染通知邮件失败: %w", err)
	}
	return buf.String(), nil
}

func (n *commentNotifier) link(evt comment.NotificationEvent) string {
	return strings.NewReplacer(
		"{tenantID}", strconv.FormatInt(evt.TenantID, 10),
		"{biz}", evt.Biz,
		"{bizID}", strconv.FormatInt(evt.BizID, 10),
		"{commentID}", strconv.FormatInt(evt.CommentID, 10),
	).Replace(n.cfg.LinkTemplate)
}

// excerpt 按字节截断，不会截断在一个字符中间
func excerpt(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	end := limit
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end] + "..."
}

const commentMailTemplate = `<p>{{.Nickname}}，你好：</p>
{{if .Reply}}<p>{{.AuthorName}} 回复了你的评论：</p>{{else}}<p>{{.AuthorName}} 评论了你发布的内容：</p>{{end}}
<blockquote>{{.Excerpt}}</blockquote>
{{if .Link}}<p><a href="{{.Link}}">查看详情</a></p>{{end}}`
