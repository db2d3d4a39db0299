package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken     string
	FeishuAppID     string
	FeishuAppSecret string

	BitableBaseID   string
	BitableTableID  string
	BitableRecordID string

	RepoFullName string
	Category     string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string

	RequestID string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x BitableBaseID) String() string  { return string(x) }
func (x BitableTableID) String() string { return string(x) }
func (x RepoFullName) String() string   { return string(x) }
func (x Category) String() string       { return string(x) }

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x FeishuAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x FeishuAppSecret) String() string {
	return "***********"
}
