package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendhub/pkg/domain/mock"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/infra"
	"github.com/secmon-lab/trendhub/pkg/usecase"
)

func testRepo(fullName string, stars int) *model.Repository {
	return &model.Repository{
		Name:            fullName,
		FullName:        types.RepoFullName(fullName),
		StargazersCount: stars,
	}
}

func TestFetchTrending(t *testing.T) {
	mockGH := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, perPage int) ([]*model.Repository, error) {
			switch query {
			case "first":
				return []*model.Repository{
					testRepo("a/x", 50),
					testRepo("c/z", 10),
				}, nil
			case "second":
				// a/x reappears with a fresher star count; the first
				// occurrence must win.
				return []*model.Repository{
					testRepo("b/y", 70),
					testRepo("a/x", 60),
				}, nil
			default:
				t.Errorf("unexpected query: %s", query)
				return nil, nil
			}
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubSearch(mockGH)))

	report := gt.R1(uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
		Queries:       []string{"first", "second"},
		QueryPageSize: 20,
		Limit:         100,
	})).NoError(t)

	gt.V(t, report.TotalCount).Equal(3)
	gt.V(t, len(report.Repositories)).Equal(3)
	gt.V(t, report.Repositories[0].FullName).Equal(types.RepoFullName("b/y"))
	gt.V(t, report.Repositories[1].FullName).Equal(types.RepoFullName("a/x"))
	gt.V(t, report.Repositories[1].StargazersCount).Equal(50)
	gt.V(t, report.Repositories[2].FullName).Equal(types.RepoFullName("c/z"))
	gt.False(t, report.FetchedAt.IsZero())
	gt.V(t, len(mockGH.SearchRepositoriesCalls())).Equal(2)
}

func TestFetchTrendingTopicQuery(t *testing.T) {
	var queries []string
	var pageSizes []int
	mockGH := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, perPage int) ([]*model.Repository, error) {
			queries = append(queries, query)
			pageSizes = append(pageSizes, perPage)
			return []*model.Repository{testRepo("a/x", 1)}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubSearch(mockGH)))

	gt.R1(uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
		Queries:       []string{"ai agent"},
		Topics:        []string{"llm-agent"},
		QueryPageSize: 20,
		TopicPageSize: 15,
		Limit:         100,
	})).NoError(t)

	gt.V(t, queries).Equal([]string{"ai agent", "topic:llm-agent"})
	gt.V(t, pageSizes).Equal([]int{20, 15})
}

func TestFetchTrendingSkipsFailedQuery(t *testing.T) {
	mockGH := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, perPage int) ([]*model.Repository, error) {
			if query == "bad" {
				return nil, errors.New("boom")
			}
			return []*model.Repository{testRepo("a/x", 5)}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubSearch(mockGH)))

	report := gt.R1(uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
		Queries:       []string{"bad", "good"},
		QueryPageSize: 20,
		Limit:         100,
	})).NoError(t)

	gt.V(t, report.TotalCount).Equal(1)
	gt.V(t, report.Repositories[0].FullName).Equal(types.RepoFullName("a/x"))
}

func TestFetchTrendingDropsInvalidRecords(t *testing.T) {
	mockGH := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, perPage int) ([]*model.Repository, error) {
			return []*model.Repository{
				{Name: "orphan", StargazersCount: 99},
				testRepo("a/x", 5),
			}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubSearch(mockGH)))

	report := gt.R1(uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
		Queries:       []string{"q"},
		QueryPageSize: 20,
		Limit:         100,
	})).NoError(t)

	gt.V(t, report.TotalCount).Equal(1)
	gt.V(t, report.Repositories[0].FullName).Equal(types.RepoFullName("a/x"))
}

func TestFetchTrendingLimit(t *testing.T) {
	mockGH := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, perPage int) ([]*model.Repository, error) {
			return []*model.Repository{
				testRepo("a/x", 10),
				testRepo("b/y", 30),
				testRepo("c/z", 20),
			}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubSearch(mockGH)))

	report := gt.R1(uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
		Queries:       []string{"q"},
		QueryPageSize: 20,
		Limit:         2,
	})).NoError(t)

	gt.V(t, report.TotalCount).Equal(2)
	gt.V(t, report.Repositories[0].FullName).Equal(types.RepoFullName("b/y"))
	gt.V(t, report.Repositories[1].FullName).Equal(types.RepoFullName("c/z"))
}

func TestFetchTrendingCategorizes(t *testing.T) {
	mockGH := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, perPage int) ([]*model.Repository, error) {
			return []*model.Repository{
				{
					FullName:    "langchain-ai/langchain",
					Description: "langchain framework",
				},
				{
					FullName:    "some/dotfiles",
					Description: "editor config",
				},
			}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubSearch(mockGH)))

	report := gt.R1(uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
		Queries:       []string{"q"},
		QueryPageSize: 20,
		Limit:         100,
	})).NoError(t)

	gt.V(t, report.Repositories[0].Category).Equal(types.Category("Agent Framework"))
	gt.V(t, report.Repositories[1].Category).Equal(types.Category("Other"))
}

func TestFetchTrendingValidation(t *testing.T) {
	uc := usecase.New(infra.New(infra.WithGitHubSearch(&mock.GitHubSearchMock{})))

	t.Run("no queries nor topics", func(t *testing.T) {
		_, err := uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
			Limit: 100,
		})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("non-positive limit", func(t *testing.T) {
		_, err := uc.FetchTrending(context.Background(), &model.FetchTrendingInput{
			Queries: []string{"q"},
		})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
