package infra

import (
	"github.com/secmon-lab/trendhub/pkg/domain/interfaces"
)

type Clients struct {
	githubSearch interfaces.GitHubSearch
	bitable      interfaces.Bitable
	bqClient     interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubSearch() interfaces.GitHubSearch {
	return x.githubSearch
}
func (x *Clients) Bitable() interfaces.Bitable {
	return x.bitable
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHubSearch(client interfaces.GitHubSearch) Option {
	return func(x *Clients) {
		x.githubSearch = client
	}
}

func WithBitable(client interfaces.Bitable) Option {
	return func(x *Clients) {
		x.bitable = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
