package bitable

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/trendhub/pkg/domain/interfaces"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
	"github.com/secmon-lab/trendhub/pkg/utils/safe"
)

const defaultBaseURL = "https://open.feishu.cn/open-apis"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Feishu Bitable API. Authenticate must be called
// once per run; it exchanges the app credential for a tenant access token
// that all later calls carry as a bearer credential.
type Client struct {
	appID      types.FeishuAppID
	appSecret  types.FeishuAppSecret
	baseURL    string
	httpClient HTTPClient
	token      string
}

var _ interfaces.Bitable = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(appID types.FeishuAppID, appSecret types.FeishuAppSecret, options ...Option) (*Client, error) {
	if appID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "feishu app ID is empty")
	}
	if appSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "feishu app secret is empty")
	}

	client := &Client{
		appID:     appID,
		appSecret: appSecret,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// apiResponse is the common Feishu envelope. A non-zero code means the
// call failed even when HTTP status is 200.
type apiResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`

	raw []byte
}

func (x *Client) do(ctx context.Context, method, path string, reqBody any, withToken bool) (*apiResponse, error) {
	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body", goerr.V("path", path))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, x.baseURL+path, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set("Authorization", "Bearer "+x.token)
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrNetwork, "feishu request failed",
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("path", path))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.Wrap(types.ErrBitableAPI, "unexpected HTTP status",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal response", goerr.V("path", path), goerr.V("body", string(raw)))
	}
	apiResp.raw = raw

	return &apiResp, nil
}

// Authenticate implements interfaces.Bitable.
func (x *Client) Authenticate(ctx context.Context) error {
	resp, err := x.do(ctx, http.MethodPost, "/auth/v3/tenant_access_token/internal", map[string]any{
		"app_id":     string(x.appID),
		"app_secret": string(x.appSecret),
	}, false)
	if err != nil {
		return goerr.Wrap(types.ErrAuthFailed, "failed to request tenant access token", goerr.V("cause", err.Error()))
	}
	if resp.Code != 0 {
		return goerr.Wrap(types.ErrAuthFailed, "tenant access token rejected",
			goerr.V("code", resp.Code),
			goerr.V("msg", resp.Msg),
		)
	}

	// The token field lives beside code/msg, not under data.
	var tokenResp struct {
		TenantAccessToken string `json:"tenant_access_token"`
	}
	if err := x.reparse(resp, &tokenResp); err != nil {
		return err
	}
	if tokenResp.TenantAccessToken == "" {
		return goerr.Wrap(types.ErrAuthFailed, "empty tenant access token")
	}

	x.token = tokenResp.TenantAccessToken
	return nil
}

// reparse decodes top-level fields that Feishu puts outside the data
// envelope. Only Authenticate needs this.
func (x *Client) reparse(resp *apiResponse, v any) error {
	if resp.raw == nil {
		return goerr.Wrap(types.ErrBitableAPI, "no raw response retained")
	}
	if err := json.Unmarshal(resp.raw, v); err != nil {
		return goerr.Wrap(err, "failed to reparse response")
	}
	return nil
}

// CreateBase implements interfaces.Bitable.
func (x *Client) CreateBase(ctx context.Context, name string) (types.BitableBaseID, error) {
	resp, err := x.do(ctx, http.MethodPost, "/bitable/v1/apps", map[string]any{
		"app": map[string]any{"name": name},
	}, true)
	if err != nil {
		return "", err
	}
	if resp.Code != 0 {
		return "", apiError(resp, "failed to create base")
	}

	var data struct {
		App struct {
			AppToken string `json:"app_token"`
		} `json:"app"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", goerr.Wrap(err, "failed to unmarshal create base response")
	}
	if data.App.AppToken == "" {
		return "", goerr.Wrap(types.ErrBitableAPI, "created base has no app_token")
	}

	logging.From(ctx).Info("created bitable base",
		slog.String("name", name),
		slog.String("base_id", data.App.AppToken),
	)

	return types.BitableBaseID(data.App.AppToken), nil
}

// GetDefaultTable implements interfaces.Bitable. It returns an empty
// table ID when the base has no tables.
func (x *Client) GetDefaultTable(ctx context.Context, baseID types.BitableBaseID) (types.BitableTableID, error) {
	resp, err := x.do(ctx, http.MethodGet, "/bitable/v1/apps/"+string(baseID)+"/tables", nil, true)
	if err != nil {
		return "", err
	}
	if resp.Code != 0 {
		return "", apiError(resp, "failed to list tables")
	}

	var data struct {
		Items []struct {
			TableID string `json:"table_id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", goerr.Wrap(err, "failed to unmarshal table list response")
	}
	if len(data.Items) == 0 {
		return "", nil
	}

	return types.BitableTableID(data.Items[0].TableID), nil
}

// CreateTable implements interfaces.Bitable.
func (x *Client) CreateTable(ctx context.Context, baseID types.BitableBaseID, name string) (types.BitableTableID, error) {
	resp, err := x.do(ctx, http.MethodPost, "/bitable/v1/apps/"+string(baseID)+"/tables", map[string]any{
		"table": map[string]any{
			"name":                name,
			"default_field_names": []string{model.BitableFieldNameRepo},
		},
	}, true)
	if err != nil {
		return "", err
	}
	if resp.Code != 0 {
		return "", apiError(resp, "failed to create table")
	}

	var data struct {
		Table struct {
			TableID string `json:"table_id"`
		} `json:"table"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", goerr.Wrap(err, "failed to unmarshal create table response")
	}
	if data.Table.TableID == "" {
		return "", goerr.Wrap(types.ErrBitableAPI, "created table has no table_id")
	}

	logging.From(ctx).Info("created bitable table",
		slog.String("name", name),
		slog.String("table_id", data.Table.TableID),
	)

	return types.BitableTableID(data.Table.TableID), nil
}

// ListFields implements interfaces.Bitable.
func (x *Client) ListFields(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID) (map[string]model.BitableField, error) {
	resp, err := x.do(ctx, http.MethodGet, fieldsPath(baseID, tableID), nil, true)
	if err != nil {
		return nil, err
	}
	if resp.Code != 0 {
		return nil, apiError(resp, "failed to list fields")
	}

	var data struct {
		Items []model.BitableField `json:"items"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal field list response")
	}

	fields := make(map[string]model.BitableField, len(data.Items))
	for _, field := range data.Items {
		fields[field.FieldName] = field
	}

	return fields, nil
}

// CreateField implements interfaces.Bitable.
func (x *Client) CreateField(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, field model.BitableField) error {
	resp, err := x.do(ctx, http.MethodPost, fieldsPath(baseID, tableID), map[string]any{
		"field": field,
	}, true)
	if err != nil {
		return err
	}
	if resp.Code != 0 {
		return goerr.Wrap(types.ErrSchemaSetup, "failed to create field",
			goerr.V("field", field.FieldName),
			goerr.V("code", resp.Code),
			goerr.V("msg", resp.Msg),
		)
	}

	return nil
}

// SearchRecord implements interfaces.Bitable. It filters on exact match
// of the name column and returns an empty record ID when no row matches.
func (x *Client) SearchRecord(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, name types.RepoFullName) (types.BitableRecordID, error) {
	resp, err := x.do(ctx, http.MethodPost, recordsPath(baseID, tableID)+"/search", map[string]any{
		"field_names": []string{model.BitableFieldNameRepo},
		"filter": map[string]any{
			"conjunction": "and",
			"conditions": []map[string]any{
				{
					"field_name": model.BitableFieldNameRepo,
					"operator":   "is",
					"value":      []string{string(name)},
				},
			},
		},
		"automatic_fields": false,
	}, true)
	if err != nil {
		return "", err
	}
	if resp.Code != 0 {
		return "", apiError(resp, "failed to search record")
	}

	var data struct {
		Items []struct {
			RecordID string `json:"record_id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", goerr.Wrap(err, "failed to unmarshal record search response")
	}
	if len(data.Items) == 0 {
		return "", nil
	}

	return types.BitableRecordID(data.Items[0].RecordID), nil
}

// CreateRecord implements interfaces.Bitable.
func (x *Client) CreateRecord(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, fields map[string]any) error {
	resp, err := x.do(ctx, http.MethodPost, recordsPath(baseID, tableID), map[string]any{
		"fields": fields,
	}, true)
	if err != nil {
		return err
	}
	if resp.Code != 0 {
		return apiError(resp, "failed to create record")
	}

	return nil
}

// UpdateRecord implements interfaces.Bitable.
func (x *Client) UpdateRecord(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, recordID types.BitableRecordID, fields map[string]any) error {
	resp, err := x.do(ctx, http.MethodPut, recordsPath(baseID, tableID)+"/"+string(recordID), map[string]any{
		"fields": fields,
	}, true)
	if err != nil {
		return err
	}
	if resp.Code != 0 {
		return apiError(resp, "failed to update record")
	}

	return nil
}

func fieldsPath(baseID types.BitableBaseID, tableID types.BitableTableID) string {
	return "/bitable/v1/apps/" + string(baseID) + "/tables/" + string(tableID) + "/fields"
}

func recordsPath(baseID types.BitableBaseID, tableID types.BitableTableID) string {
	return "/bitable/v1/apps/" + string(baseID) + "/tables/" + string(tableID) + "/records"
}

func apiError(resp *apiResponse, msg string) error {
	return goerr.Wrap(types.ErrBitableAPI, msg,
		goerr.V("code", resp.Code),
		goerr.V("msg", resp.Msg),
	)
}
