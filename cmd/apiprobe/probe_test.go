package main

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/octofit/internal/apiclient"
	"example.com/octofit/internal/fakeapi"
)

func newProbeClient(t *testing.T, store *fakeapi.Store) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(fakeapi.NewHandler(store))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL+"/api", apiclient.WithLogger(log.New(&bytes.Buffer{}, "", 0)))
}

func TestRunPrintsInfoAndUsers(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), newProbeClient(t, fakeapi.NewStore()), &out))

	require.Contains(t, out.String(), "Message:        Welcome to OctoFit API")
	require.Contains(t, out.String(), "  zerocool - zerocool@merington.edu\n")
}

func TestRunReportsEmptyUsers(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), newProbeClient(t, fakeapi.NewEmptyStore()), &out))
	require.Contains(t, out.String(), "No users found.")
}

func TestRunFailsOnAPIError(t *testing.T) {
	store := fakeapi.NewStore()
	store.FailWith("root", http.StatusServiceUnavailable)

	err := run(context.Background(), newProbeClient(t, store), &bytes.Buffer{})
	require.Error(t, err)
	require.Equal(t, http.StatusServiceUnavailable, apiclient.StatusCode(err))
}
