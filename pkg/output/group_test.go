package output

import (
	"testing"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/artifact"
	"github.com/stretchr/testify/assert"
)

func TestGroupByFileKeepsFirstSeenOrder(t *testing.T) {
	g := GroupByFile([]artifact.LintFinding{
		finding("z.json", "r1", "", "error"),
		finding("a.json", "r2", "", "error"),
		finding("z.json", "r3", "", "error"),
		finding("m.json", "r4", "", "error"),
	})

	assert.Equal(t, []string{"z.json", "a.json", "m.json"}, g.Files())
	assert.Equal(t, 3, g.Len())

	rules := make([]string, 0)
	for _, f := range g.Findings("z.json") {
		rules = append(rules, f.RuleID)
	}
	assert.Equal(t, []string{"r1", "r3"}, rules)
	assert.Nil(t, g.Findings("missing.json"))
}

func TestGroupByFileEmpty(t *testing.T) {
	g := GroupByFile(nil)

	assert.Empty(t, g.Files())
	assert.Zero(t, g.Len())
}
