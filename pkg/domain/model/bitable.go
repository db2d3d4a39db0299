package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/secmon-lab/trendhub/pkg/domain/types"
)

// Feishu Bitable field type codes.
// https://open.feishu.cn/document/server-docs/docs/bitable-v1/app-table-field/guide
type BitableFieldType int

const (
	BitableFieldText      BitableFieldType = 1
	BitableFieldNumber    BitableFieldType = 2
	BitableFieldLongText  BitableFieldType = 3
	BitableFieldTimestamp BitableFieldType = 5
	BitableFieldCheckbox  BitableFieldType = 7
	BitableFieldURL       BitableFieldType = 15
)

type BitableField struct {
	FieldName string           `json:"field_name"`
	Type      BitableFieldType `json:"type"`
}

// Field names are kept in the external table's own language. The name
// field is the reconciliation key.
const (
	BitableFieldNameRepo      = "项目名称"
	BitableFieldNameDesc      = "描述"
	BitableFieldNameStars     = "Stars"
	BitableFieldNameForks     = "Forks"
	BitableFieldNameLanguage  = "语言"
	BitableFieldNameLink      = "链接"
	BitableFieldNameAuthor    = "作者"
	BitableFieldNameTags      = "标签"
	BitableFieldNameUpdatedAt = "更新时间"
	BitableFieldNameRead      = "是否已读"
	BitableFieldNameStarred   = "是否关注"
	BitableFieldNameNote      = "备注"
)

// BitableFieldDefinitions is the required column set, ensured on every
// sync run. Data-driven so the schema-ensure step stays a plain loop.
func BitableFieldDefinitions() []BitableField {
	return []BitableField{
		{FieldName: BitableFieldNameRepo, Type: BitableFieldText},
		{FieldName: BitableFieldNameDesc, Type: BitableFieldLongText},
		{FieldName: BitableFieldNameStars, Type: BitableFieldNumber},
		{FieldName: BitableFieldNameForks, Type: BitableFieldNumber},
		{FieldName: BitableFieldNameLanguage, Type: BitableFieldLongText},
		{FieldName: BitableFieldNameLink, Type: BitableFieldURL},
		{FieldName: BitableFieldNameAuthor, Type: BitableFieldText},
		{FieldName: BitableFieldNameTags, Type: BitableFieldText},
		{FieldName: BitableFieldNameUpdatedAt, Type: BitableFieldTimestamp},
		{FieldName: BitableFieldNameRead, Type: BitableFieldCheckbox},
		{FieldName: BitableFieldNameStarred, Type: BitableFieldCheckbox},
		{FieldName: BitableFieldNameNote, Type: BitableFieldLongText},
	}
}

const (
	bitableDescriptionLimit = 2000
	bitableTagLimit         = 10
)

// BitableCreateFields builds the full field set for a new row. Only
// columns present in the actual table schema are populated.
func BitableCreateFields(repo *Repository, existing map[string]BitableField, now time.Time) map[string]any {
	fields := map[string]any{}

	if _, ok := existing[BitableFieldNameRepo]; ok {
		fields[BitableFieldNameRepo] = string(repo.FullName)
	}
	if _, ok := existing[BitableFieldNameDesc]; ok {
		desc := repo.Description
		// Truncation counts characters, not bytes: descriptions in this
		// table are mostly CJK and a byte cut can split a rune.
		if utf8.RuneCountInString(desc) > bitableDescriptionLimit {
			desc = string([]rune(desc)[:bitableDescriptionLimit])
		}
		fields[BitableFieldNameDesc] = desc
	}
	if _, ok := existing[BitableFieldNameStars]; ok {
		fields[BitableFieldNameStars] = repo.StargazersCount
	}
	if _, ok := existing[BitableFieldNameForks]; ok {
		fields[BitableFieldNameForks] = repo.ForksCount
	}
	if _, ok := existing[BitableFieldNameLanguage]; ok {
		lang := repo.Language
		if lang == "" {
			lang = "Unknown"
		}
		fields[BitableFieldNameLanguage] = lang
	}
	if _, ok := existing[BitableFieldNameLink]; ok {
		fields[BitableFieldNameLink] = map[string]any{
			"link": repo.HTMLURL,
			"text": repo.Name,
		}
	}
	if _, ok := existing[BitableFieldNameAuthor]; ok {
		fields[BitableFieldNameAuthor] = repo.Owner.Login
	}
	if _, ok := existing[BitableFieldNameTags]; ok && len(repo.Topics) > 0 {
		tags := repo.Topics
		if len(tags) > bitableTagLimit {
			tags = tags[:bitableTagLimit]
		}
		fields[BitableFieldNameTags] = strings.Join(tags, ", ")
	}
	if _, ok := existing[BitableFieldNameUpdatedAt]; ok {
		fields[BitableFieldNameUpdatedAt] = now.UnixMilli()
	}

	return fields
}

// BitableUpdateFields refreshes only the mutable columns. Descriptive
// columns are never overwritten on update so manual edits in the external
// table survive repeated runs.
func BitableUpdateFields(repo *Repository, existing map[string]BitableField, now time.Time) map[string]any {
	fields := map[string]any{}

	if _, ok := existing[BitableFieldNameStars]; ok {
		fields[BitableFieldNameStars] = repo.StargazersCount
	}
	if _, ok := existing[BitableFieldNameForks]; ok {
		fields[BitableFieldNameForks] = repo.ForksCount
	}
	if _, ok := existing[BitableFieldNameUpdatedAt]; ok {
		fields[BitableFieldNameUpdatedAt] = now.UnixMilli()
	}

	return fields
}

// SyncResult is the terminal summary of one Bitable sync run. Side
// effects already issued are never rolled back.
type SyncResult struct {
	Created int
	Updated int
	Failed  int
	BaseID  types.BitableBaseID
	TableID types.BitableTableID
}
