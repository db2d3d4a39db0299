package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
)

// Repository is the canonical record shape shared by the aggregator, the
// site renderer and the Bitable sync. The JSON tags define the envelope
// file contract and must not change without updating both consumers.
type Repository struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	FullName        types.RepoFullName `json:"full_name"`
	Description     string             `json:"description"`
	HTMLURL         string             `json:"html_url"`
	StargazersCount int                `json:"stargazers_count"`
	ForksCount      int                `json:"forks_count"`
	OpenIssuesCount int                `json:"open_issues_count"`
	WatchersCount   int                `json:"watchers_count"`
	Language        string             `json:"language"`
	Topics          []string           `json:"topics"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
	PushedAt        string             `json:"pushed_at"`
	Owner           RepositoryOwner    `json:"owner"`
	License         string             `json:"license"`
	Homepage        string             `json:"homepage"`
	Archived        bool               `json:"archived"`
	Fork            bool               `json:"fork"`

	// Category is assigned after aggregation and is not part of the
	// source record identity.
	Category types.Category `json:"category,omitempty"`
}

type RepositoryOwner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Type      string `json:"type"`
}

func (x *Repository) Validate() error {
	if x.FullName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "full_name is empty")
	}
	return nil
}
