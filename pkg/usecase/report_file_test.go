package usecase_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/usecase"
)

func TestReportFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trending.json")

	report := &model.TrendingReport{
		FetchedAt:  time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC),
		TotalCount: 1,
		Repositories: []*model.Repository{
			{
				ID:              123,
				Name:            "langchain",
				FullName:        "langchain-ai/langchain",
				HTMLURL:         "https://github.com/langchain-ai/langchain?tab=readme",
				StargazersCount: 90000,
				Category:        "Agent Framework",
			},
		},
	}

	gt.NoError(t, usecase.WriteReportFile(path, report))

	raw := gt.R1(os.ReadFile(path)).NoError(t)
	body := string(raw)
	gt.True(t, strings.Contains(body, `"fetched_at"`))
	gt.True(t, strings.Contains(body, `"total_count": 1`))
	gt.True(t, strings.Contains(body, `"full_name": "langchain-ai/langchain"`))
	// HTML escaping must stay off so URLs survive verbatim.
	gt.True(t, strings.Contains(body, "?tab=readme"))

	loaded := gt.R1(usecase.ReadReportFile(path)).NoError(t)
	gt.V(t, loaded.TotalCount).Equal(1)
	gt.V(t, loaded.FetchedAt.Equal(report.FetchedAt)).Equal(true)
	gt.V(t, loaded.Repositories[0].FullName).Equal(types.RepoFullName("langchain-ai/langchain"))
	gt.V(t, loaded.Repositories[0].Category).Equal(types.Category("Agent Framework"))
}

func TestReadReportFileMissing(t *testing.T) {
	_, err := usecase.ReadReportFile(filepath.Join(t.TempDir(), "nope.json"))
	gt.Error(t, err)
}
