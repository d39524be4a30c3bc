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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

// CommentVote 投票明细表，一个人对一条评论只有一条记录
type CommentVote struct {
	ID        int64 `gorm:"primaryKey,autoIncrement"`
	CommentID int64 `gorm:"uniqueIndex:uniq_comment_uid"`
	Uid       int64 `gorm:"uniqueIndex:uniq_comment_uid;index"`
	// 1 或者 -1
	Weight int `gorm:"type:tinyint;not null"`
	Utime  int64
	Ctime  int64
}

func (CommentVote) TableName() string {
	return "comment_votes"
}

// VoteStat 某条评论的投票统计
type VoteStat struct {
	CommentID int64
	Up        int64
	Down      int64
	Score     int64
}

type VoteDAO interface {
	// Upsert 重复投票会覆盖之前的投票
	Upsert(ctx context.Context, v CommentVote) error
	Stats(ctx context.Context, commentIDs []int64) ([]VoteStat, error)
	UserVotes(ctx context.Context, uid int64, commentIDs []int64) ([]CommentVote, error)
}

type voteDAO struct {
	db *egorm.Component
}

func NewVoteGORMDAO(db *egorm.Component) VoteDAO {
	return &voteDAO{db: db}
}

func (d *voteDAO) Upsert(ctx context.Context, v CommentVote) error {
	now := time.Now().UnixMilli()
	v.Ctime, v.Utime = now, now
	// 依赖 (comment_id, uid) 唯一索引，并发投票的时候以最后一次为准
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"weight": v.Weight,
			"utime":  now,
		}),
	}).Create(&v).Error
}

func (d *voteDAO) Stats(ctx context.Context, commentIDs []int64) ([]VoteStat, error) {
	var res []VoteStat
	if len(commentIDs) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Model(&CommentVote{}).
		Select("comment_id, " +
			"SUM(CASE WHEN weight > 0 THEN 1 ELSE 0 END) AS up, " +
			"SUM(CASE WHEN weight < 0 THEN 1 ELSE 0 END) AS down, " +
			"SUM(weight) AS score").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&res).Error
	return res, err
}

func (d *voteDAO) UserVotes(ctx context.Context, uid int64, commentIDs []int64) ([]CommentVote, error) {
	var res []CommentVote
	if len(commentIDs) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).
		Where("uid = ? AND comment_id IN ?", uid, commentIDs).
		Find(&res).Error
	return res, err
}
