package model

import (
	"time"

	"github.com/secmon-lab/trendhub/pkg/domain/types"
)

// TrendingReport is the result envelope persisted between the aggregator
// and its downstream consumers.
type TrendingReport struct {
	FetchedAt    time.Time     `json:"fetched_at"`
	TotalCount   int           `json:"total_count"`
	Repositories []*Repository `json:"repositories"`
}

// TrendingSnapshot is one BigQuery row mirroring a whole aggregator run.
type TrendingSnapshot struct {
	ID           types.RequestID `bigquery:"id" json:"id"`
	Timestamp    time.Time       `bigquery:"timestamp" json:"timestamp"`
	TotalCount   int             `bigquery:"total_count" json:"total_count"`
	Repositories []*Repository   `bigquery:"repositories" json:"repositories"`
}
