package git

import (
	"fmt"
	"net/url"
	"strings"
)

// Remote is a remote URL split into the parts a forge cares about.
type Remote struct {
	Host string
	// Path is the repository path without the .git suffix, e.g. owner/repo or group/sub/repo.
	Path string
}

// Owner returns the first path segment.
func (r Remote) Owner() string {
	owner, _, _ := strings.Cut(r.Path, "/")
	return owner
}

// Name returns the last path segment.
func (r Remote) Name() string {
	return r.Path[strings.LastIndex(r.Path, "/")+1:]
}

// ParseRemoteURL parses HTTPS and SSH remote URLs. SSH URLs such as
// git@github.com:owner/repo.git are read as https://github.com/owner/repo.git.
func ParseRemoteURL(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "git@"); ok {
		raw = "https://" + strings.Replace(rest, ":", "/", 1)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return Remote{}, fmt.Errorf("%w: %w", ErrInvalidRemoteURL, err)
	}

	path := strings.TrimSuffix(strings.Trim(parsed.Path, "/"), ".git")
	if parsed.Hostname() == "" || !strings.Contains(path, "/") {
		return Remote{}, fmt.Errorf("%w: %s", ErrInvalidRemoteURL, raw)
	}

	return Remote{Host: parsed.Hostname(), Path: path}, nil
}
