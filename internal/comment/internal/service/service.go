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
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/repository"
	"github.com/ecodeclub/agora/internal/group"
	"github.com/ecodeclub/agora/internal/user"
	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// ListQuery 查询某个评论对象下的评论
type ListQuery struct {
	TenantID int64
	Biz      string
	BizID    int64
	Order    domain.Order
	// 查看者，大于 0 的时候会带上查看者自己的投票
	Viewer int64
}

//go:generate mockgen -source=./service.go -package=svcmocks -destination=../../mocks/comment.mock.go CommentService
type CommentService interface {
	// Create 创建直接评论（始祖评论），子评论及孙子评论
	// comment.Author.User.ID 是当前用户，comment.Author.GroupID 是希望署名的用户组
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	// List 查找某一业务下的所有评论，组装成树并按照 Order 排序，同时返回评论总数
	List(ctx context.Context, q ListQuery) ([]domain.Comment, int64, error)
	// Count 某一业务下的评论总数，包含回复
	Count(ctx context.Context, tenantID int64, biz string, bizID int64) (int64, error)
	// Vote 投票，同一个人重复投票会覆盖之前的投票
	Vote(ctx context.Context, tenantID int64, vote domain.Vote) (domain.VoteSummary, error)
	// Score 评论当前的得分
	Score(ctx context.Context, commentID int64) (int64, error)

	// RegisterCommentable 登记评论对象以及它的能力
	RegisterCommentable(ctx context.Context, c domain.Commentable) error
	Commentable(ctx context.Context, tenantID int64, biz string, bizID int64) (domain.Commentable, error)
}

type commentService struct {
	repo       repository.CommentRepository
	voteRepo   repository.VoteRepository
	targetRepo repository.CommentableRepository
	resolver   AuthorResolver
	dispatcher Dispatcher
	userSvc    user.UserService
	groupSvc   group.Service
	logger     *elog.Component
}

func NewCommentService(repo repository.CommentRepository,
	voteRepo repository.VoteRepository,
	targetRepo repository.CommentableRepository,
	resolver AuthorResolver,
	dispatcher Dispatcher,
	userSvc user.UserService,
	groupSvc group.Service) CommentService {
	return &commentService{
		repo:       repo,
		voteRepo:   voteRepo,
		targetRepo: targetRepo,
		resolver:   resolver,
		dispatcher: dispatcher,
		userSvc:    userSvc,
		groupSvc:   groupSvc,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("comment.service")),
	}
}

func (s *commentService) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	comment.Content = strings.TrimSpace(comment.Content)
	if comment.Content == "" {
		return domain.Comment{}, ErrEmptyContent
	}
	if !comment.Alignment.Valid() {
		return domain.Comment{}, ErrInvalidAlignment
	}

	target, err := s.targetRepo.Find(ctx, comment.TenantID, comment.Biz, comment.BizID)
	if err != nil {
		return domain.Comment{}, err
	}
	if comment.Alignment != domain.AlignmentUnset && !target.AllowsAlignment {
		return domain.Comment{}, ErrAlignmentDisabled
	}

	author, err := s.resolver.Resolve(ctx, comment.TenantID, comment.Author.User.ID, comment.Author.GroupID)
	if err != nil {
		return domain.Comment{}, err
	}
	comment.Author = author

	var parent domain.Comment
	if comment.ParentID > 0 {
		parent, err = s.parentOf(ctx, comment)
		if err != nil {
			return domain.Comment{}, err
		}
	}

	created, err := s.repo.Create(ctx, comment)
	if errors.Is(err, repository.ErrInvalidParentID) {
		return domain.Comment{}, ErrInvalidParent
	}
	if err != nil {
		return domain.Comment{}, err
	}
	s.fillProfile(ctx, &created)

	s.dispatcher.Dispatch(ctx, CommentCreated{
		Comment: created,
		Target:  target,
		Parent:  parent,
	})
	return created, nil
}

// parentOf 父评论必须属于同一个评论对象
func (s *commentService) parentOf(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	parent, err := s.repo.FindByID(ctx, comment.ParentID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Comment{}, ErrInvalidParent
	}
	if err != nil {
		return domain.Comment{}, err
	}
	if parent.TenantID != comment.TenantID ||
		parent.Biz != comment.Biz ||
		parent.BizID != comment.BizID {
		return domain.Comment{}, ErrInvalidParent
	}
	return parent, nil
}

// fillProfile 新评论的署名，失败了也不影响评论
func (s *commentService) fillProfile(ctx context.Context, c *domain.Comment) {
	if c.Author.IsGroup() {
		return
	}
	u, err := s.userSvc.Profile(ctx, c.Author.User.ID)
	if err != nil {
		s.logger.Warn("查询评论者信息失败",
			elog.FieldErr(err),
			elog.Int64("uid", c.Author.User.ID))
		return
	}
	c.Author.User = domain.User{ID: u.Id, NickName: u.Nickname, Avatar: u.Avatar}
}

func (s *commentService) List(ctx context.Context, q ListQuery) ([]domain.Comment, int64, error) {
	comments, err := s.repo.ListFor(ctx, q.TenantID, q.Biz, q.BizID)
	if err != nil {
		return nil, 0, err
	}
	if len(comments) == 0 {
		return []domain.Comment{}, 0, nil
	}

	ids := slice.Map(comments, func(_ int, src domain.Comment) int64 { return src.ID })
	var (
		eg        errgroup.Group
		summaries map[int64]domain.VoteSummary
	)
	eg.Go(func() error {
		var er error
		summaries, er = s.voteRepo.Summaries(ctx, q.Viewer, ids)
		return er
	})
	eg.Go(func() error {
		return s.setAuthorInfo(ctx, comments)
	})
	if err = eg.Wait(); err != nil {
		return nil, 0, err
	}
	for i := range comments {
		comments[i].Votes = summaries[comments[i].ID]
	}
	return Rank(comments, q.Order), int64(len(comments)), nil
}

// setAuthorInfo 个人署名填充用户信息，用户组署名填充用户组名称
func (s *commentService) setAuthorInfo(ctx context.Context, comments []domain.Comment) error {
	// 同一个人往往有多条评论，先去重
	uidSet := make(map[int64]struct{}, len(comments))
	gidSet := make(map[int64]struct{}, 4)
	for i := range comments {
		uidSet[comments[i].Author.User.ID] = struct{}{}
		if comments[i].Author.IsGroup() {
			gidSet[comments[i].Author.GroupID] = struct{}{}
		}
	}
	uids, gids := mapx.Keys(uidSet), mapx.Keys(gidSet)

	var (
		eg       errgroup.Group
		profiles []user.User
		groups   []group.UserGroup
	)
	eg.Go(func() error {
		var err error
		profiles, err = s.userSvc.BatchProfile(ctx, uids)
		return err
	})
	if len(gids) > 0 {
		eg.Go(func() error {
			var err error
			groups, err = s.groupSvc.FindByIDs(ctx, gids)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	userMap := slice.ToMap(profiles, func(u user.User) int64 { return u.Id })
	groupMap := slice.ToMap(groups, func(g group.UserGroup) int64 { return g.ID })
	for i := range comments {
		author := &comments[i].Author
		if u, ok := userMap[author.User.ID]; ok {
			author.User = domain.User{ID: u.Id, NickName: u.Nickname, Avatar: u.Avatar}
		}
		if g, ok := groupMap[author.GroupID]; ok {
			author.Name = g.Name
		}
	}
	return nil
}

func (s *commentService) Count(ctx context.Context, tenantID int64, biz string, bizID int64) (int64, error) {
	return s.repo.Count(ctx, tenantID, biz, bizID)
}

func (s *commentService) Vote(ctx context.Context, tenantID int64, vote domain.Vote) (domain.VoteSummary, error) {
	if vote.Weight != domain.WeightUp && vote.Weight != domain.WeightDown {
		return domain.VoteSummary{}, ErrInvalidWeight
	}
	c, err := s.repo.FindByID(ctx, vote.CommentID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.VoteSummary{}, ErrCommentNotFound
	}
	if err != nil {
		return domain.VoteSummary{}, err
	}
	if c.TenantID != tenantID {
		return domain.VoteSummary{}, ErrCommentNotFound
	}
	target, err := s.targetRepo.Find(ctx, c.TenantID, c.Biz, c.BizID)
	if err != nil {
		return domain.VoteSummary{}, err
	}
	if !target.AllowsVotes {
		return domain.VoteSummary{}, ErrVotesDisabled
	}
	if err = s.voteRepo.Save(ctx, vote); err != nil {
		return domain.VoteSummary{}, err
	}
	summaries, err := s.voteRepo.Summaries(ctx, vote.Uid, []int64{vote.CommentID})
	if err != nil {
		return domain.VoteSummary{}, err
	}
	return summaries[vote.CommentID], nil
}

func (s *commentService) Score(ctx context.Context, commentID int64) (int64, error) {
	summaries, err := s.voteRepo.Summaries(ctx, 0, []int64{commentID})
	if err != nil {
		return 0, err
	}
	return summaries[commentID].Score, nil
}

func (s *commentService) RegisterCommentable(ctx context.Context, c domain.Commentable) error {
	return s.targetRepo.Register(ctx, c)
}

func (s *commentService) Commentable(ctx context.Context, tenantID int64, biz string, bizID int64) (domain.Commentable, error) {
	return s.targetRepo.Find(ctx, tenantID, biz, bizID)
}
