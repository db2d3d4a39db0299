package bitable_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/infra/bitable"
)

func newTestClient(t *testing.T, handler http.Handler) *bitable.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gt.R1(bitable.New("cli_test_app", "test_secret", bitable.WithBaseURL(srv.URL))).NoError(t)
	return client
}

func authHandler(t *testing.T, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/v3/tenant_access_token/internal" {
			var body map[string]string
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gt.V(t, body["app_id"]).Equal("cli_test_app")
			gt.V(t, body["app_secret"]).Equal("test_secret")

			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "tenant_access_token": "t-token-xyz", "expire": 7200}`))
			return
		}

		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer t-token-xyz")
		next(w, r)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, authHandler(t, nil))
		gt.NoError(t, client.Authenticate(context.Background()))
	})

	t.Run("non-zero code", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code": 99991663, "msg": "app not found"}`))
		}))
		err := client.Authenticate(context.Background())
		gt.True(t, errors.Is(err, types.ErrAuthFailed))
	})

	t.Run("http error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		err := client.Authenticate(context.Background())
		gt.True(t, errors.Is(err, types.ErrAuthFailed))
	})
}

func TestCreateBase(t *testing.T) {
	client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		gt.V(t, r.URL.Path).Equal("/bitable/v1/apps")
		_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {"app": {"app_token": "bascnXXX"}}}`))
	}))
	ctx := context.Background()
	gt.NoError(t, client.Authenticate(ctx))

	baseID := gt.R1(client.CreateBase(ctx, "热门项目")).NoError(t)
	gt.V(t, baseID).Equal(types.BitableBaseID("bascnXXX"))
}

func TestGetDefaultTable(t *testing.T) {
	t.Run("with tables", func(t *testing.T) {
		client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/bitable/v1/apps/bascnXXX/tables")
			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {"items": [{"table_id": "tblAAA"}, {"table_id": "tblBBB"}]}}`))
		}))
		ctx := context.Background()
		gt.NoError(t, client.Authenticate(ctx))

		tableID := gt.R1(client.GetDefaultTable(ctx, "bascnXXX")).NoError(t)
		gt.V(t, tableID).Equal(types.BitableTableID("tblAAA"))
	})

	t.Run("empty base", func(t *testing.T) {
		client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {"items": []}}`))
		}))
		ctx := context.Background()
		gt.NoError(t, client.Authenticate(ctx))

		tableID := gt.R1(client.GetDefaultTable(ctx, "bascnXXX")).NoError(t)
		gt.V(t, tableID).Equal(types.BitableTableID(""))
	})
}

func TestListAndCreateFields(t *testing.T) {
	client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/bitable/v1/apps/bascnXXX/tables/tblAAA/fields")
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {"items": [
				{"field_name": "项目名称", "type": 1},
				{"field_name": "Stars", "type": 2}
			]}}`))
		case http.MethodPost:
			raw := gt.R1(io.ReadAll(r.Body)).NoError(t)
			var body struct {
				Field model.BitableField `json:"field"`
			}
			gt.NoError(t, json.Unmarshal(raw, &body))
			gt.V(t, body.Field.FieldName).Equal("链接")
			gt.V(t, body.Field.Type).Equal(model.BitableFieldURL)
			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {}}`))
		}
	}))
	ctx := context.Background()
	gt.NoError(t, client.Authenticate(ctx))

	fields := gt.R1(client.ListFields(ctx, "bascnXXX", "tblAAA")).NoError(t)
	gt.V(t, len(fields)).Equal(2)
	gt.V(t, fields["Stars"].Type).Equal(model.BitableFieldNumber)

	gt.NoError(t, client.CreateField(ctx, "bascnXXX", "tblAAA", model.BitableField{
		FieldName: "链接",
		Type:      model.BitableFieldURL,
	}))
}

func TestCreateFieldRejected(t *testing.T) {
	client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 1254001, "msg": "field name duplicated"}`))
	}))
	ctx := context.Background()
	gt.NoError(t, client.Authenticate(ctx))

	err := client.CreateField(ctx, "bascnXXX", "tblAAA", model.BitableField{FieldName: "Stars", Type: model.BitableFieldNumber})
	gt.True(t, errors.Is(err, types.ErrSchemaSetup))
}

func TestSearchRecord(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/bitable/v1/apps/bascnXXX/tables/tblAAA/records/search")

			raw := gt.R1(io.ReadAll(r.Body)).NoError(t)
			var body struct {
				Filter struct {
					Conjunction string `json:"conjunction"`
					Conditions  []struct {
						FieldName string   `json:"field_name"`
						Operator  string   `json:"operator"`
						Value     []string `json:"value"`
					} `json:"conditions"`
				} `json:"filter"`
			}
			gt.NoError(t, json.Unmarshal(raw, &body))
			gt.V(t, body.Filter.Conjunction).Equal("and")
			gt.V(t, len(body.Filter.Conditions)).Equal(1)
			gt.V(t, body.Filter.Conditions[0].FieldName).Equal("项目名称")
			gt.V(t, body.Filter.Conditions[0].Operator).Equal("is")
			gt.V(t, body.Filter.Conditions[0].Value).Equal([]string{"langchain-ai/langchain"})

			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {"items": [{"record_id": "recXYZ"}]}}`))
		}))
		ctx := context.Background()
		gt.NoError(t, client.Authenticate(ctx))

		recordID := gt.R1(client.SearchRecord(ctx, "bascnXXX", "tblAAA", "langchain-ai/langchain")).NoError(t)
		gt.V(t, recordID).Equal(types.BitableRecordID("recXYZ"))
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {"items": []}}`))
		}))
		ctx := context.Background()
		gt.NoError(t, client.Authenticate(ctx))

		recordID := gt.R1(client.SearchRecord(ctx, "bascnXXX", "tblAAA", "no/such")).NoError(t)
		gt.V(t, recordID).Equal(types.BitableRecordID(""))
	})
}

func TestCreateAndUpdateRecord(t *testing.T) {
	client := newTestClient(t, authHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/bitable/v1/apps/bascnXXX/tables/tblAAA/records":
			raw := gt.R1(io.ReadAll(r.Body)).NoError(t)
			var body struct {
				Fields map[string]any `json:"fields"`
			}
			gt.NoError(t, json.Unmarshal(raw, &body))
			gt.V(t, body.Fields["项目名称"]).Equal("langchain-ai/langchain")
			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {"record": {"record_id": "recNEW"}}}`))

		case r.Method == http.MethodPut && r.URL.Path == "/bitable/v1/apps/bascnXXX/tables/tblAAA/records/recXYZ":
			_, _ = w.Write([]byte(`{"code": 0, "msg": "ok", "data": {}}`))

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	ctx := context.Background()
	gt.NoError(t, client.Authenticate(ctx))

	gt.NoError(t, client.CreateRecord(ctx, "bascnXXX", "tblAAA", map[string]any{
		"项目名称": "langchain-ai/langchain",
	}))
	gt.NoError(t, client.UpdateRecord(ctx, "bascnXXX", "tblAAA", "recXYZ", map[string]any{
		"Stars": 100,
	}))
}

type failingHTTPClient struct{}

func (x *failingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestTransportFailure(t *testing.T) {
	client := gt.R1(bitable.New("cli_test_app", "test_secret",
		bitable.WithHTTPClient(&failingHTTPClient{}),
	)).NoError(t)

	err := client.Authenticate(context.Background())
	gt.True(t, errors.Is(err, types.ErrAuthFailed))
}

func TestNewValidation(t *testing.T) {
	t.Run("empty app ID", func(t *testing.T) {
		_, err := bitable.New("", "secret")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("empty app secret", func(t *testing.T) {
		_, err := bitable.New("cli_xxx", "")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
