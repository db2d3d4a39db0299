package model

import (
	"strings"

	"github.com/secmon-lab/trendhub/pkg/domain/types"
)

// CategoryRule assigns a category when any of its keywords appears in the
// record text. A rule with no keywords always matches and terminates the
// rule table as the fallback.
type CategoryRule struct {
	Name     types.Category
	Keywords []string
}

// Categorizer labels repositories by the first matching rule in declared
// order. Matching is substring containment on the lowercased concatenation
// of topics, description and name. This is a coarse heuristic: a keyword
// inside a longer unrelated word still counts.
type Categorizer struct {
	rules []CategoryRule
}

func NewCategorizer(rules []CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

func (x *Categorizer) Categorize(repo *Repository) types.Category {
	text := strings.ToLower(
		strings.Join(repo.Topics, " ") + " " + repo.Description + " " + repo.Name,
	)

	for _, rule := range x.rules {
		if len(rule.Keywords) == 0 {
			return rule.Name
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Name
			}
		}
	}

	return ""
}

// DefaultCategoryRules is the built-in rule table. Order matters: the
// first match wins, and the final empty rule is the fallback.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Name: "Agent Framework", Keywords: []string{"langchain", "autogen", "crewai", "agent-framework", "multi-agent"}},
		{Name: "Claude & Skills", Keywords: []string{"claude", "anthropic", "ai-skill"}},
		{Name: "Autonomous Agent", Keywords: []string{"autogpt", "babyagi", "autonomous"}},
		{Name: "Coding Assistant", Keywords: []string{"copilot", "coding-assistant", "code-generation"}},
		{Name: "Assistant & Chat", Keywords: []string{"assistant", "chatbot", "chatgpt"}},
		{Name: "LLM Tooling", Keywords: []string{"llm", "rag", "prompt", "openai", "gpt"}},
		{Name: "Other"},
	}
}
