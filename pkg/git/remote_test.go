//go:build unit

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expected    Remote
		expectError bool
	}{
		{
			name:     "https",
			url:      "https://github.com/owner/repo.git",
			expected: Remote{Host: "github.com", Path: "owner/repo"},
		},
		{
			name:     "https without suffix",
			url:      "https://github.com/owner/repo\n",
			expected: Remote{Host: "github.com", Path: "owner/repo"},
		},
		{
			name:     "ssh",
			url:      "git@github.com:owner/repo.git",
			expected: Remote{Host: "github.com", Path: "owner/repo"},
		},
		{
			name:     "ssh scheme",
			url:      "ssh://git@gitlab.example.com/group/sub/repo.git",
			expected: Remote{Host: "gitlab.example.com", Path: "group/sub/repo"},
		},
		{
			name:        "no repository path",
			url:         "https://github.com/owner",
			expectError: true,
		},
		{
			name:        "not a URL",
			url:         "origin",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseRemoteURL(tt.url)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidRemoteURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRemote_OwnerAndName(t *testing.T) {
	remote := Remote{Host: "gitlab.com", Path: "group/sub/repo"}
	assert.Equal(t, "group", remote.Owner())
	assert.Equal(t, "repo", remote.Name())
}
