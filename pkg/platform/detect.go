// Package platform provides platform detection functionality
package platform

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// ciVars maps CI providers to the variable that identifies them, in detection order.
var ciVars = []struct {
	name    string
	varName string
	value   string // empty means any non-empty value
}{
	{"github", "GITHUB_ACTIONS", "true"},
	{"gitlab", "GITLAB_CI", "true"},
	{"gitee", "GITEE_CI", "true"},
	{"jenkins", "JENKINS_URL", ""},
	{"azure", "TF_BUILD", "true"},
	{"bitbucket", "BITBUCKET_BUILD_NUMBER", ""},
	{"circleci", "CIRCLECI", "true"},
	{"drone", "DRONE", "true"},
}

// DetectPlatform auto-detects the current CI/CD platform from environment variables
func DetectPlatform() string {
	for _, ci := range ciVars {
		val := os.Getenv(ci.varName)
		if val == "" {
			continue
		}
		if ci.value == "" || val == ci.value {
			return ci.name
		}
	}
	return "local"
}

// DetectPullRequest reads the pull request being built from the GitHub Actions
// environment. The number comes from the event payload at GITHUB_EVENT_PATH,
// falling back to a refs/pull/<n>/merge GITHUB_REF.
func DetectPullRequest(fsys afero.Fs) (PullRequestRef, error) {
	var ref PullRequestRef

	if repo := os.Getenv("GITHUB_REPOSITORY"); repo != "" {
		owner, name, err := ParseRepository(repo)
		if err != nil {
			return ref, err
		}
		ref.Owner, ref.Repo = owner, name
	}

	if path := os.Getenv("GITHUB_EVENT_PATH"); path != "" {
		if n, err := prNumberFromEvent(fsys, path); err == nil && n > 0 {
			ref.Number = n
			return ref, nil
		}
	}

	if n, ok := prNumberFromRef(os.Getenv("GITHUB_REF")); ok {
		ref.Number = n
	}

	return ref, nil
}

// prNumberFromEvent extracts the PR number from a pull_request,
// pull_request_target or issue_comment event payload.
func prNumberFromEvent(fsys afero.Fs, path string) (int, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return 0, err
	}
	if !gjson.ValidBytes(data) {
		return 0, fmt.Errorf("invalid event payload: %s", path)
	}

	for _, p := range []string{"pull_request.number", "issue.number", "number"} {
		if v := gjson.GetBytes(data, p); v.Exists() && v.Int() > 0 {
			return int(v.Int()), nil
		}
	}
	return 0, fmt.Errorf("no pull request number in event payload")
}

// prNumberFromRef parses refs/pull/<n>/merge or refs/pull/<n>/head.
func prNumberFromRef(ref string) (int, bool) {
	rest, ok := strings.CutPrefix(ref, "refs/pull/")
	if !ok {
		return 0, false
	}
	num, _, _ := strings.Cut(rest, "/")
	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
