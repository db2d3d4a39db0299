package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
)

type FetchTrendingInput struct {
	Queries       []string
	Topics        []string
	QueryPageSize int
	TopicPageSize int
	Limit         int
	Rules         []CategoryRule
}

func (x *FetchTrendingInput) Validate() error {
	if len(x.Queries) == 0 && len(x.Topics) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "no search queries or topics")
	}
	if x.Limit <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "limit must be positive", goerr.V("limit", x.Limit))
	}
	return nil
}

type SyncBitableInput struct {
	Report  *TrendingReport
	BaseID  types.BitableBaseID
	TableID types.BitableTableID
}

func (x *SyncBitableInput) Validate() error {
	if x.Report == nil {
		return goerr.Wrap(types.ErrInvalidOption, "report is required")
	}
	return nil
}
