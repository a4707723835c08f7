package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-pet/internal/router"
)

func TestRun_CreateActState(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, run(ctx, []string{"-addr", ts.URL, "create", "-name", "Milo"}, &buf))
	var p struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &p))
	require.NotEmpty(t, p.ID)
	assert.Equal(t, "Milo", p.Name)

	buf.Reset()
	require.NoError(t, run(ctx, []string{"-addr", ts.URL, "act", "-pet", p.ID, "-action", "sleep", "-energy", "3"}, &buf))
	assert.Contains(t, buf.String(), `"energy": 8`)

	buf.Reset()
	require.NoError(t, run(ctx, []string{"-addr", ts.URL, "state", "-pet", p.ID}, &buf))
	assert.Contains(t, buf.String(), `"energy": 8`)
}

func TestRun_Usage(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, run(context.Background(), nil, &buf), errUsage)
	assert.ErrorIs(t, run(context.Background(), []string{"dance"}, &buf), errUsage)
	assert.Error(t, run(context.Background(), []string{"state"}, &buf), "missing -pet")
}
