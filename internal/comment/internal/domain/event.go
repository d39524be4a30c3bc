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

package domain

// NotificationKind 通知的类型
type NotificationKind string

const (
	NotificationNewComment NotificationKind = "new_comment"
	NotificationNewReply   NotificationKind = "new_reply"
)

// Subject 邮件标题
func (k NotificationKind) Subject() string {
	if k == NotificationNewReply {
		return "new reply"
	}
	return "new comment"
}
