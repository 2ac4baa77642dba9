package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/processes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("f"))
		if r.URL.Query().Get("limit") == "1" {
			_, _ = w.Write([]byte(`{"processes":[{"id":"echo","title":"Echo"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"processes":[{"id":"echo","title":"Echo"},{"id":"buffer"}]}`))
	})
	mux.HandleFunc("/processes/echo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "echo",
			"title": "Echo",
			"inputs": {
				"zeta": {"title": "Zeta", "schema": {"type": "string"}},
				"alpha": {"schema": {"type": "number"}},
				"mid.dle": {"schema": {"type": "boolean"}, "minOccurs": 0}
			},
			"outputs": {
				"result": {"title": "Result", "schema": {"type": "string"}}
			}
		}`))
	})
	mux.HandleFunc("/processes/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"NoSuchProcess","detail":"process missing not found"}`))
	})
	mux.HandleFunc("/processes/landing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body>Welcome</body></html>`))
	})
	mux.HandleFunc("/conformance", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"conformsTo":["` + ConformanceCore + `","` + ConformanceJSON + `"]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListProcesses(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL + "/")

	processes, err := c.ListProcesses(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, processes, 2)
	assert.Equal(t, "echo", processes[0].ID)
	assert.Equal(t, "Echo", processes[0].Title)
	assert.Equal(t, "buffer", processes[1].ID)
	assert.Empty(t, processes[1].Title)
}

func TestListProcesses_Filter(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	processes, err := c.ListProcesses(context.Background(), "?limit=1")
	require.NoError(t, err)
	assert.Len(t, processes, 1)

	_, err = c.ListProcesses(context.Background(), "%zz")
	assert.Error(t, err)
}

func TestGetProcess_PreservesInputOrder(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	desc, err := c.GetProcess(context.Background(), "echo")
	require.NoError(t, err)

	names := make([]string, len(desc.Inputs))
	for i, in := range desc.Inputs {
		names[i] = in.Name
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid.dle"}, names)
	assert.Equal(t, "Zeta", desc.Inputs[0].Title)
	assert.JSONEq(t, `{"type":"number"}`, string(desc.Inputs[1].Schema))
	require.NotNil(t, desc.Inputs[2].MinOccurs)
	assert.Equal(t, 0, *desc.Inputs[2].MinOccurs)

	require.Len(t, desc.Outputs, 1)
	assert.Equal(t, "result", desc.Outputs[0].Name)
}

func TestGetProcess_APIError(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	_, err := c.GetProcess(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "process missing not found", apiErr.Message)
}

func TestGetConformance_Missing(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	conf, err := c.GetConformance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{ConformanceProcessDescription}, conf.Missing(RequiredConformance))
}

func TestInputList_ArrayForm(t *testing.T) {
	var desc ProcessDescription
	err := json.Unmarshal([]byte(`{
		"id": "legacy",
		"inputs": [
			{"id": "b", "title": "B", "schema": {"type": "string"}},
			{"id": "a", "schema": {"type": "integer"}}
		],
		"outputs": null
	}`), &desc)
	require.NoError(t, err)
	require.Len(t, desc.Inputs, 2)
	assert.Equal(t, "b", desc.Inputs[0].Name)
	assert.Equal(t, "a", desc.Inputs[1].Name)
	assert.Empty(t, desc.Outputs)
}

func TestInputList_Invalid(t *testing.T) {
	var l InputList
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[{"title":"no id"}]`), &l))
}

func TestGetProcess_HTMLResponse(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	_, err := c.GetProcess(context.Background(), "landing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected text/html response")
}
