// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCommit(t *testing.T) {
	tests := []struct {
		vcs  VCSInfo
		want string
	}{
		{VCSInfo{}, WithMeta},
		{VCSInfo{Commit: "9b68875d68b409eb", Date: "20250101"}, WithMeta + "-9b68875d-20250101"},
		{VCSInfo{Commit: "9b68875d68b409eb", Dirty: true}, WithMeta + "-9b68875d-dirty"},
		{VCSInfo{Commit: "abc"}, WithMeta},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WithCommit(tt.vcs))
	}
}

func TestBuildInfoVCS(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "9b68875d68b409eb2efdb68a4b623aaacc10a5b6"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2025-03-04T10:11:12Z"},
	}}
	vcs, ok := buildInfoVCS(info)
	require.True(t, ok)
	assert.Equal(t, VCSInfo{Commit: "9b68875d68b409eb2efdb68a4b623aaacc10a5b6", Date: "20250304", Dirty: true}, vcs)

	_, ok = buildInfoVCS(&debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ab"}}})
	assert.False(t, ok)
}
