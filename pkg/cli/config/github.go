package config

import (
	"log/slog"

	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/infra/ghsearch"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token types.GitHubToken `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token (optional, raises rate limits)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("TRENDHUB_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
	}
}

func (x GitHub) New() *ghsearch.Client {
	return ghsearch.New(x.token)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
	)
}
