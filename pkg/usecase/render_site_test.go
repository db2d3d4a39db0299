package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/infra"
	"github.com/secmon-lab/trendhub/pkg/usecase"
)

func TestRenderSite(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")
	uc := usecase.New(infra.New())

	report := &model.TrendingReport{
		FetchedAt:  time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
		TotalCount: 2,
		Repositories: []*model.Repository{
			{
				Name:            "langchain",
				FullName:        "langchain-ai/langchain",
				Description:     "Build context-aware reasoning applications",
				HTMLURL:         "https://github.com/langchain-ai/langchain",
				StargazersCount: 91234,
				ForksCount:      14000,
				Language:        "Python",
				Category:        "Agent Framework",
			},
			{
				Name:            "tiny-tool",
				FullName:        "someone/tiny-tool",
				HTMLURL:         "https://github.com/someone/tiny-tool",
				StargazersCount: 987,
				Category:        "Other",
			},
		},
	}

	gt.NoError(t, uc.RenderSite(context.Background(), report, outDir))

	raw := gt.R1(os.ReadFile(filepath.Join(outDir, "index.html"))).NoError(t)
	html := string(raw)

	gt.True(t, strings.Contains(html, "langchain-ai/langchain"))
	gt.True(t, strings.Contains(html, "https://github.com/langchain-ai/langchain"))
	gt.True(t, strings.Contains(html, "91.2k"))
	gt.True(t, strings.Contains(html, "987"))
	gt.True(t, strings.Contains(html, "Agent Framework"))
	gt.True(t, strings.Contains(html, "2026-08-31 09:30"))
	// Records are embedded for in-page filtering.
	gt.True(t, strings.Contains(html, `"full_name":"someone/tiny-tool"`))
	// Records without a description get a placeholder.
	gt.True(t, strings.Contains(html, "暂无描述"))
}

func TestRenderSiteNilReport(t *testing.T) {
	uc := usecase.New(infra.New())
	gt.Error(t, uc.RenderSite(context.Background(), nil, t.TempDir()))
}
