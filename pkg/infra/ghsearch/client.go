package ghsearch

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/trendhub/pkg/domain/interfaces"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
)

const maxPerPage = 100

type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubSearch = (*Client)(nil)

type Option func(*Client)

// WithBaseURL redirects API calls, mainly for test servers.
func WithBaseURL(u *url.URL) Option {
	return func(x *Client) {
		x.gh.BaseURL = u
	}
}

// New creates a search client. An empty token is allowed: the search API
// works unauthenticated, only with tighter rate limits.
func New(token types.GitHubToken, options ...Option) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := &Client{
		gh: github.NewClient(httpClient),
	}
	for _, opt := range options {
		opt(client)
	}

	return client
}

// SearchRepositories issues a single page of the repository search API,
// sorted by stars descending. It never retries; 403 responses surface as
// ErrRateLimited so the caller can decide.
func (x *Client) SearchRepositories(ctx context.Context, query string, perPage int) ([]*model.Repository, error) {
	if query == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "query is empty")
	}
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}

	opts := &github.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	result, resp, err := x.gh.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, wrapSearchError(err, resp, query)
	}

	repos := make([]*model.Repository, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		repos = append(repos, normalizeRepository(repo))
	}

	logging.From(ctx).Debug("searched repositories",
		slog.String("query", query),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}

func wrapSearchError(err error, resp *github.Response, query string) error {
	switch err.(type) {
	case *github.RateLimitError, *github.AbuseRateLimitError:
		return goerr.Wrap(types.ErrRateLimited, "search rate limit exceeded", goerr.V("query", query))
	}

	if resp != nil {
		switch {
		case resp.StatusCode == http.StatusForbidden:
			return goerr.Wrap(types.ErrRateLimited, "search request forbidden", goerr.V("query", query))
		case resp.StatusCode >= http.StatusInternalServerError:
			return goerr.Wrap(types.ErrExternalServer, "search server error",
				goerr.V("query", query),
				goerr.V("status", resp.StatusCode),
			)
		}
	}

	return goerr.Wrap(types.ErrNetwork, "search request failed", goerr.V("query", query), goerr.V("cause", err.Error()))
}

func normalizeRepository(repo *github.Repository) *model.Repository {
	return &model.Repository{
		ID:              repo.GetID(),
		Name:            repo.GetName(),
		FullName:        types.RepoFullName(repo.GetFullName()),
		Description:     repo.GetDescription(),
		HTMLURL:         repo.GetHTMLURL(),
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
		OpenIssuesCount: repo.GetOpenIssuesCount(),
		WatchersCount:   repo.GetWatchersCount(),
		Language:        repo.GetLanguage(),
		Topics:          repo.Topics,
		CreatedAt:       formatTimestamp(repo.GetCreatedAt()),
		UpdatedAt:       formatTimestamp(repo.GetUpdatedAt()),
		PushedAt:        formatTimestamp(repo.GetPushedAt()),
		Owner: model.RepositoryOwner{
			Login:     repo.GetOwner().GetLogin(),
			AvatarURL: repo.GetOwner().GetAvatarURL(),
			Type:      repo.GetOwner().GetType(),
		},
		License:  repo.GetLicense().GetSPDXID(),
		Homepage: repo.GetHomepage(),
		Archived: repo.GetArchived(),
		Fork:     repo.GetFork(),
	}
}

func formatTimestamp(ts github.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
