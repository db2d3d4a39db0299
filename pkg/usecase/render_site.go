package usecase

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
	"github.com/secmon-lab/trendhub/pkg/utils/safe"
)

//go:embed templates/index.html.tmpl
var siteTemplateFS embed.FS

type sitePage struct {
	TotalCount  int
	TotalStars  string
	FetchedDate string
	Categories  []types.Category
	Report      *model.TrendingReport
	ReposJSON   template.JS
}

// RenderSite writes a single self-contained index.html into outDir. The
// record set is embedded as JSON for in-page filtering.
func (x *UseCase) RenderSite(ctx context.Context, report *model.TrendingReport, outDir string) error {
	if report == nil {
		return goerr.Wrap(types.ErrInvalidOption, "report is required")
	}

	tmpl, err := template.New("index.html.tmpl").Funcs(template.FuncMap{
		"shortNum": shortNum,
	}).ParseFS(siteTemplateFS, "templates/index.html.tmpl")
	if err != nil {
		return goerr.Wrap(err, "failed to parse site template")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outDir))
	}

	var totalStars int
	for _, repo := range report.Repositories {
		totalStars += repo.StargazersCount
	}

	raw, err := json.Marshal(report.Repositories)
	if err != nil {
		return goerr.Wrap(err, "failed to serialize repositories")
	}

	page := &sitePage{
		TotalCount:  len(report.Repositories),
		TotalStars:  groupDigits(totalStars),
		FetchedDate: report.FetchedAt.Format("2006-01-02 15:04"),
		Categories:  distinctCategories(report.Repositories),
		Report:      report,
		ReposJSON:   template.JS(raw),
	}

	path := filepath.Join(outDir, "index.html")
	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create site file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	if err := tmpl.Execute(fd, page); err != nil {
		return goerr.Wrap(err, "failed to render site", goerr.V("path", path))
	}

	logging.From(ctx).Info("generated site",
		slog.String("path", path),
		slog.Int("repositories", page.TotalCount),
	)

	return nil
}

func distinctCategories(repos []*model.Repository) []types.Category {
	seen := map[types.Category]bool{}
	var categories []types.Category
	for _, repo := range repos {
		if repo.Category == "" || seen[repo.Category] {
			continue
		}
		seen[repo.Category] = true
		categories = append(categories, repo.Category)
	}
	return categories
}

// shortNum renders 1234 as "1.2k".
func shortNum(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// groupDigits renders 1234567 as "1,234,567".
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
