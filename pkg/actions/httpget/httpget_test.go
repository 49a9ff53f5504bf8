package httpaction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

func TestGetPublishesBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("response body"))
	}))
	defer server.Close()

	node := runtime.NewNode(New(server.URL))
	rt := runtime.NewBuilder().AddAction(node).Build()
	require.NoError(t, rt.Perform(context.Background()))

	out, ok := rt.GetOutput(node)
	require.True(t, ok)
	body, err := out.AsString()
	require.NoError(t, err)
	require.Equal(t, "response body", body)
}

func TestGetFailsOnServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	node := runtime.NewNode(New(server.URL))
	rt := runtime.NewBuilder().AddAction(node).Build()

	err := rt.Perform(context.Background())
	require.Error(t, err)

	var failed *barleyerrors.ActionFailedError
	require.ErrorAs(t, err, &failed)
	require.Contains(t, failed.Short, "500")
}

func TestGetDynamicURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("dynamic target"))
	}))
	defer server.Close()

	producer := runtime.NewNode(urlProducer{url: server.URL})
	get := runtime.NewNode(NewFrom(producer))
	get.Requires(producer)

	rt := runtime.NewBuilder().AddAction(producer).AddAction(get).Build()
	require.NoError(t, rt.Perform(context.Background()))

	out, ok := rt.GetOutput(get)
	require.True(t, ok)
	body, err := out.AsString()
	require.NoError(t, err)
	require.Equal(t, "dynamic target", body)
}

func TestGetRollbackUnsupported(t *testing.T) {
	t.Parallel()

	action := New("http://localhost/unused")
	rt := runtime.NewBuilder().Build()

	_, err := action.Run(context.Background(), rt, runtime.OperationRollback)
	require.ErrorIs(t, err, barleyerrors.ErrOperationNotSupported)
}

// urlProducer publishes a fixed URL as its output.
type urlProducer struct {
	url string
}

func (p urlProducer) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true}, nil
}

func (p urlProducer) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	out := runtime.StringOutput(p.url)
	return &out, nil
}

func (p urlProducer) DisplayName() string {
	return "resolve url"
}
