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

// UserGroup 用户组，例如某个协会、某个组织。
// 只有认证过的用户组，成员才能以它的名义发表评论
type UserGroup struct {
	ID       int64
	TenantID int64
	Name     string
	Verified bool
	Ctime    int64
	Utime    int64
}
