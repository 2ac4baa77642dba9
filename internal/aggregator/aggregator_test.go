package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/diag"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

type fakeServer struct {
	listed      []client.ProcessSummary
	listErr     error
	details     map[string]*client.ProcessDescription
	conformance []string
	confErr     error
}

type fakeSource struct {
	servers map[string]*fakeServer
	calls   []string
}

func (f *fakeSource) ListProcesses(_ context.Context, server, filter string) ([]client.ProcessSummary, error) {
	f.calls = append(f.calls, "list "+server+" "+filter)
	s := f.servers[server]
	return s.listed, s.listErr
}

func (f *fakeSource) GetProcess(_ context.Context, server, id string) (*client.ProcessDescription, error) {
	f.calls = append(f.calls, "get "+server+" "+id)
	desc, ok := f.servers[server].details[id]
	if !ok {
		return nil, &client.APIError{StatusCode: 404, Message: "no such process"}
	}
	cp := *desc
	return &cp, nil
}

func (f *fakeSource) GetConformance(_ context.Context, server string) (*client.Conformance, error) {
	s := f.servers[server]
	if s.confErr != nil {
		return nil, s.confErr
	}
	return &client.Conformance{ConformsTo: s.conformance}, nil
}

func process(id, title string) *client.ProcessDescription {
	return &client.ProcessDescription{
		ID:    id,
		Title: title,
		Inputs: client.InputList{{
			Name:        "x",
			Title:       "X",
			Description: "An input",
			Schema:      []byte(`{"type":"integer","nullable":true,"default":1}`),
		}},
	}
}

func server(ids ...string) *fakeServer {
	s := &fakeServer{
		details:     make(map[string]*client.ProcessDescription),
		conformance: client.RequiredConformance,
	}
	for _, id := range ids {
		s.listed = append(s.listed, client.ProcessSummary{ID: id, Title: "Title " + id})
		s.details[id] = process(id, "Title "+id)
	}
	return s
}

func ids(r *types.Registry) []string {
	var out []string
	for _, e := range r.Entries() {
		out = append(out, e.ID)
	}
	return out
}

func warningCodes(d *diag.Collector) []string {
	var out []string
	for _, w := range d.Warnings() {
		out = append(out, w.Code)
	}
	return out
}

func TestServerSpec_Selects(t *testing.T) {
	tests := []struct {
		name string
		spec ServerSpec
		id   string
		want bool
	}{
		{"wildcard", ServerSpec{Include: []string{"*"}}, "a", true},
		{"listed", ServerSpec{Include: []string{"a"}}, "a", true},
		{"not listed", ServerSpec{Include: []string{"a"}}, "b", false},
		{"exclusion beats wildcard", ServerSpec{Include: []string{"*"}, Exclude: []string{"a"}}, "a", false},
		{"exclusion beats listing", ServerSpec{Include: []string{"a"}, Exclude: []string{"a"}}, "a", false},
		{"empty include", ServerSpec{}, "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Selects(tt.id))
		})
	}
}

func TestAggregate_FilteringAndOrder(t *testing.T) {
	src := &fakeSource{servers: map[string]*fakeServer{
		"https://a": server("echo", "buffer", "clip"),
	}}
	d := diag.New(nil)

	res, err := New(src, d).Aggregate(context.Background(), []ServerSpec{{
		URL:     "https://a",
		Include: []string{"*"},
		Exclude: []string{"buffer"},
		Filter:  "limit=10",
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{"echo", "clip"}, ids(res.Registry))
	assert.False(t, res.IsDegraded())
	assert.Empty(t, d.Warnings())
	assert.Equal(t, []string{
		"list https://a limit=10",
		"get https://a echo",
		"get https://a clip",
	}, src.calls, "excluded processes are never fetched")

	entry := res.Registry.Entries()[0]
	assert.Equal(t, "https://a", entry.Server)
	require.Len(t, entry.Inputs, 1)
	assert.Equal(t, types.KindInteger, entry.Inputs[0].Kind)
}

func TestAggregate_ScenarioD_DuplicateAcrossServers(t *testing.T) {
	src := &fakeSource{servers: map[string]*fakeServer{
		"https://a": server("p1"),
		"https://b": server("p0", "p1"),
	}}
	d := diag.New(nil)

	res, err := New(src, d).Aggregate(context.Background(), []ServerSpec{
		{URL: "https://a", Include: []string{"p1"}},
		{URL: "https://b", Include: []string{"p1"}},
	})
	require.NoError(t, err)

	entries := res.Registry.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "https://a", entries[0].Server)
	assert.Equal(t, "https://b", entries[1].Server)
	assert.Equal(t, []string{types.CodeDuplicateProcess}, warningCodes(d))

	sel := res.Registry.Selector()
	assert.Equal(t, []string{"p1", "p1"}, sel.ChoiceValues())
}

func TestAggregate_ZeroServers(t *testing.T) {
	res, err := New(&fakeSource{}, nil).Aggregate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Registry.Len())
	assert.Empty(t, res.Registry.Selector().Choices)
}

func TestAggregate_EmptyListContinues(t *testing.T) {
	src := &fakeSource{servers: map[string]*fakeServer{
		"https://empty": server(),
		"https://b":     server("echo"),
	}}
	d := diag.New(nil)

	res, err := New(src, d).Aggregate(context.Background(), []ServerSpec{
		{URL: "https://empty", Include: []string{"*"}},
		{URL: "https://b", Include: []string{"*"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo"}, ids(res.Registry))
	assert.Equal(t, []string{types.CodeEmptyProcessList}, warningCodes(d))
}

func TestAggregate_ConformanceIsAdvisory(t *testing.T) {
	partial := server("echo")
	partial.conformance = []string{client.ConformanceCore}
	unreachable := server("clip")
	unreachable.confErr = errors.New("connection reset")

	src := &fakeSource{servers: map[string]*fakeServer{
		"https://partial":     partial,
		"https://unreachable": unreachable,
	}}
	d := diag.New(nil)

	res, err := New(src, d).Aggregate(context.Background(), []ServerSpec{
		{URL: "https://partial", Include: []string{"*"}},
		{URL: "https://unreachable", Include: []string{"*"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "clip"}, ids(res.Registry))
	assert.True(t, res.IsDegraded())
	assert.Equal(t, []string{"https://partial", "https://unreachable"}, res.Degraded)
	assert.Equal(t, []string{types.CodeMissingConformance, types.CodeConformanceUnavailable}, warningCodes(d))
}

func TestAggregate_IncludedButNotListed(t *testing.T) {
	src := &fakeSource{servers: map[string]*fakeServer{"https://a": server("echo")}}
	d := diag.New(nil)

	res, err := New(src, d).Aggregate(context.Background(), []ServerSpec{
		{URL: "https://a", Include: []string{"echo", "ghost"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo"}, ids(res.Registry))

	warnings := d.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, types.CodeIncludedMissing, warnings[0].Code)
	assert.Equal(t, "ghost", warnings[0].Process)
}

func TestAggregate_FetchErrorsAreFatal(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		broken := server()
		broken.listErr = errors.New("boom")
		src := &fakeSource{servers: map[string]*fakeServer{"https://a": broken}}

		_, err := New(src, nil).Aggregate(context.Background(), []ServerSpec{{URL: "https://a", Include: []string{"*"}}})
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, OpList, fetchErr.Op)
		assert.Equal(t, "https://a", fetchErr.Server)
		assert.Equal(t, "list processes on https://a: boom", err.Error())
	})

	t.Run("describe", func(t *testing.T) {
		s := server("echo")
		delete(s.details, "echo")
		src := &fakeSource{servers: map[string]*fakeServer{"https://a": s}}

		_, err := New(src, nil).Aggregate(context.Background(), []ServerSpec{{URL: "https://a", Include: []string{"*"}}})
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, OpDescribe, fetchErr.Op)
		assert.Equal(t, "echo", fetchErr.Process)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
	})
}

func TestAggregate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{servers: map[string]*fakeServer{"https://a": server("echo")}}
	_, err := New(src, nil).Aggregate(ctx, []ServerSpec{{URL: "https://a", Include: []string{"*"}}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, src.calls)
}

func TestAggregate_FillsMissingDetailFields(t *testing.T) {
	s := server("echo")
	s.details["echo"] = &client.ProcessDescription{}
	src := &fakeSource{servers: map[string]*fakeServer{"https://a": s}}

	res, err := New(src, nil).Aggregate(context.Background(), []ServerSpec{{URL: "https://a", Include: []string{"*"}}})
	require.NoError(t, err)
	entry := res.Registry.Entries()[0]
	assert.Equal(t, "echo", entry.ID)
	assert.Equal(t, "Title echo", entry.Title)
}
