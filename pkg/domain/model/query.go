package model

// Default search inputs for the aggregator. These are configuration, not
// behavior: the usecase receives them via FetchTrendingInput so tests can
// substitute small fixture lists.

func DefaultSearchQueries() []string {
	return []string{
		"ai-agent",
		"llm-agent",
		"ai-skill",
		"claude-skill",
		"gpt-agent",
		"autonomous-agent",
		"ai-assistant",
		"langchain-agent",
		"autogpt",
		"agent-framework",
	}
}

func DefaultSearchTopics() []string {
	return []string{
		"ai-agent",
		"llm",
		"gpt",
		"claude",
		"autonomous-agent",
		"ai-assistant",
		"langchain",
		"openai",
		"anthropic",
	}
}

const (
	DefaultQueryPageSize = 20
	DefaultTopicPageSize = 15
	DefaultReportLimit   = 100
)
