package gitrepo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"

	"openproject/internal/application"
	"openproject/internal/ports"
)

// DefaultRemote is the remote consulted for the repository page
const DefaultRemote = "origin"

// Resolver implements ports.RemoteResolver with go-git
type Resolver struct {
	remote string
}

// Ensure Resolver implements RemoteResolver
var _ ports.RemoteResolver = (*Resolver)(nil)

// NewResolver creates a resolver for the origin remote
func NewResolver() *Resolver {
	return &Resolver{remote: DefaultRemote}
}

// RemoteURL returns the web URL of the repository at path
func (r *Resolver) RemoteURL(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", path, err)
	}

	remote, err := repo.Remote(r.remote)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return "", fmt.Errorf("remote %s of %s: %w", r.remote, path, application.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read remote %s: %w", r.remote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s of %s has no URL: %w", r.remote, path, application.ErrNotFound)
	}
	return WebURL(urls[0])
}

// WebURL converts a clone URL into the https address of the repository
// page. Supported forms are scp-like (git@host:owner/repo.git), ssh://,
// git:// and http(s):// URLs.
func WebURL(remote string) (string, error) {
	remote = strings.TrimSpace(remote)

	var host, repoPath string
	if u, err := url.Parse(remote); err == nil && u.Scheme != "" && u.Host != "" {
		switch u.Scheme {
		case "http", "https", "ssh", "git", "git+ssh":
		default:
			return "", fmt.Errorf("unsupported remote scheme %q", u.Scheme)
		}
		host = u.Hostname()
		repoPath = u.Path
	} else if at := strings.Index(remote, "@"); at >= 0 && strings.Contains(remote[at:], ":") {
		hostAndPath := remote[at+1:]
		colon := strings.Index(hostAndPath, ":")
		host = hostAndPath[:colon]
		repoPath = hostAndPath[colon+1:]
	} else {
		return "", fmt.Errorf("unsupported remote %q", remote)
	}

	repoPath = strings.Trim(repoPath, "/")
	repoPath = strings.TrimSuffix(repoPath, ".git")
	if host == "" || repoPath == "" {
		return "", fmt.Errorf("unsupported remote %q", remote)
	}

	return "https://" + host + "/" + repoPath, nil
}
