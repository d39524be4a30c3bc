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
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNotificationConfig(t *testing.T) {
	econf.Set("notification", map[string]any{
		"comment": map[string]any{
			"fromAlias":    "agora",
			"linkTemplate": "https://agora.example.com/{biz}/{bizID}#comment_{commentID}",
		},
	})
	cfg, err := initNotificationConfig()
	require.NoError(t, err)
	assert.Equal(t, "agora", cfg.FromAlias)
	assert.Equal(t, "https://agora.example.com/{biz}/{bizID}#comment_{commentID}", cfg.LinkTemplate)
}
