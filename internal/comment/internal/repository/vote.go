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

	"github.com/ecodeclub/agora/internal/comment/internal/domain"
	"github.com/ecodeclub/agora/internal/comment/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./vote.go -package=repomocks -destination=./mocks/vote.mock.go VoteRepository
type VoteRepository interface {
	Save(ctx context.Context, vote domain.Vote) error
	// Summaries 批量查询投票汇总，uid 大于 0 的时候会带上该用户自己的投票
	Summaries(ctx context.Context, uid int64, commentIDs []int64) (map[int64]domain.VoteSummary, error)
}

type voteRepository struct {
	dao dao.VoteDAO
}

func NewVoteRepository(dao dao.VoteDAO) VoteRepository {
	return &voteRepository{dao: dao}
}

func (r *voteRepository) Save(ctx context.Context, vote domain.Vote) error {
	return r.dao.Upsert(ctx, dao.CommentVote{
		CommentID: vote.CommentID,
		Uid:       vote.Uid,
		Weight:    vote.Weight,
	})
}

func (r *voteRepository) Summaries(ctx context.Context, uid int64, commentIDs []int64) (map[int64]domain.VoteSummary, error) {
	var (
		eg    errgroup.Group
		stats []dao.VoteStat
		mine  []dao.CommentVote
	)
	eg.Go(func() error {
		var err error
		stats, err = r.dao.Stats(ctx, commentIDs)
		return err
	})
	if uid > 0 {
		eg.Go(func() error {
			var err error
			mine, err = r.dao.UserVotes(ctx, uid, commentIDs)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := make(map[int64]domain.VoteSummary, len(commentIDs))
	for _, st := range stats {
		res[st.CommentID] = domain.VoteSummary{
			Up:    st.Up,
			Down:  st.Down,
			Score: st.Score,
		}
	}
	for _, v := range mine {
		summary := res[v.CommentID]
		summary.MyWeight = v.Weight
		res[v.CommentID] = summary
	}
	return res, nil
}
