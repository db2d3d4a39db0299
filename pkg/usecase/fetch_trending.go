package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
)

// FetchTrending runs every search query and topic filter in declared
// order, merges the results into one ranked report. A failed individual
// call is logged and skipped; it never aborts the run.
func (x *UseCase) FetchTrending(ctx context.Context, input *model.FetchTrendingInput) (*model.TrendingReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHubSearch() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub search client is required")
	}

	logger := logging.From(ctx)

	var collected []*model.Repository

	for _, query := range input.Queries {
		repos, err := x.clients.GitHubSearch().SearchRepositories(ctx, query, input.QueryPageSize)
		if err != nil {
			logger.Warn("search query failed, skipping",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
			continue
		}
		logger.Info("search query completed",
			slog.String("query", query),
			slog.Int("count", len(repos)),
		)
		collected = append(collected, repos...)
	}

	for _, topic := range input.Topics {
		repos, err := x.clients.GitHubSearch().SearchRepositories(ctx, "topic:"+topic, input.TopicPageSize)
		if err != nil {
			logger.Warn("topic search failed, skipping",
				slog.String("topic", topic),
				slog.String("error", err.Error()),
			)
			continue
		}
		logger.Info("topic search completed",
			slog.String("topic", topic),
			slog.Int("count", len(repos)),
		)
		collected = append(collected, repos...)
	}

	unique := dedupRepositories(collected)

	// Stable sort keeps input order for equal star counts, which makes
	// runs reproducible.
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].StargazersCount > unique[j].StargazersCount
	})

	if len(unique) > input.Limit {
		unique = unique[:input.Limit]
	}

	rules := input.Rules
	if rules == nil {
		rules = model.DefaultCategoryRules()
	}
	categorizer := model.NewCategorizer(rules)
	for _, repo := range unique {
		repo.Category = categorizer.Categorize(repo)
	}

	report := &model.TrendingReport{
		FetchedAt:    logging.CtxTime(ctx).UTC(),
		TotalCount:   len(unique),
		Repositories: unique,
	}

	logger.Info("fetched trending repositories",
		slog.Int("collected", len(collected)),
		slog.Int("total", report.TotalCount),
	)

	return report, nil
}

// dedupRepositories drops records that fail validation and keeps the
// first occurrence per full_name. A later duplicate may carry fresher
// star counts from another query; discarding it is a deliberate
// staleness tradeoff.
func dedupRepositories(repos []*model.Repository) []*model.Repository {
	seen := map[types.RepoFullName]bool{}
	unique := make([]*model.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo.Validate() != nil || seen[repo.FullName] {
			continue
		}
		seen[repo.FullName] = true
		unique = append(unique, repo)
	}

	return unique
}
