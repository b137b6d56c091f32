package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner = "arjunm"
	defaultRepo  = "violino"
)

// Checker queries GitHub releases and compares versions.
type Checker struct {
	client          *http.Client
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithBaseURL overrides the GitHub API host, for tests.
func WithBaseURL(api string) Option {
	return func(c *Checker) { c.apiBaseURL = api }
}

// WithDownloadBaseURL overrides the release download host, for tests.
func WithDownloadBaseURL(download string) Option {
	return func(c *Checker) { c.downloadBaseURL = download }
}

func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker against the project's release repo.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: 30 * time.Second},
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      "https://api.github.com",
		downloadBaseURL: "https://github.com",
		execPath:        executablePath,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CheckInput holds the running version to compare against.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
}

// Check fetches the latest release tag and compares it to the running
// version using semver ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read release response: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parse release response: %w", err)
	}

	latest := canonicalVersion(release.TagName)
	current := canonicalVersion(input.Version)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a valid version", release.TagName)
	}

	result := &CheckResult{
		CurrentVersion: input.Version,
		LatestVersion:  release.TagName,
	}
	// An unparseable current version (dev build) never blocks an update.
	if !semver.IsValid(current) || semver.Compare(latest, current) > 0 {
		result.UpdateAvailable = true
	}
	return result, nil
}

// canonicalVersion normalizes a tag to the "vMAJOR.MINOR.PATCH" form
// semver expects.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}
