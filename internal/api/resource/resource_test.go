package resource

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chipadmin/internal/api/resource/resourcetest"
	"chipadmin/internal/utils/httpclient"
)

const base = "http://backend:3001/api/things"

func TestResource_Operations(t *testing.T) {
	payload := map[string]any{"name": "a", "id": 3}

	tests := []struct {
		name       string
		call       func(ctx context.Context, res *Resource) error
		wantMethod string
		wantURL    string
		wantOpts   any
	}{
		{
			name: "list",
			call: func(ctx context.Context, res *Resource) error {
				_, err := res.List(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantURL:    base,
			wantOpts:   resourcetest.NoBody(),
		},
		{
			name: "add",
			call: func(ctx context.Context, res *Resource) error {
				_, err := res.Add(ctx, payload)
				return err
			},
			wantMethod: http.MethodPost,
			wantURL:    base + "/add",
			wantOpts:   resourcetest.WithData(payload),
		},
		{
			name: "update",
			call: func(ctx context.Context, res *Resource) error {
				_, err := res.Update(ctx, payload)
				return err
			},
			wantMethod: http.MethodPost,
			wantURL:    base + "/update",
			wantOpts:   resourcetest.WithData(payload),
		},
		{
			name: "delete",
			call: func(ctx context.Context, res *Resource) error {
				_, err := res.Delete(ctx, 42)
				return err
			},
			wantMethod: http.MethodDelete,
			wantURL:    base + "/delete/42",
			wantOpts:   resourcetest.NoBody(),
		},
		{
			name: "delete negative id is interpolated verbatim",
			call: func(ctx context.Context, res *Resource) error {
				_, err := res.Delete(ctx, -1)
				return err
			},
			wantMethod: http.MethodDelete,
			wantURL:    base + "/delete/-1",
			wantOpts:   resourcetest.NoBody(),
		},
		{
			name: "search",
			call: func(ctx context.Context, res *Resource) error {
				_, err := res.Search(ctx, payload)
				return err
			},
			wantMethod: http.MethodPost,
			wantURL:    base + "/search",
			wantOpts:   resourcetest.WithData(payload),
		},
		{
			name: "get subpath",
			call: func(ctx context.Context, res *Resource) error {
				_, err := res.Get(ctx, "/options/information")
				return err
			},
			wantMethod: http.MethodGet,
			wantURL:    base + "/options/information",
			wantOpts:   resourcetest.NoBody(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(resourcetest.MockRequester)
			r.On("Request", mock.Anything, tt.wantMethod, tt.wantURL, tt.wantOpts, mock.Anything).
				Return(nil).
				Run(resourcetest.Respond(`{"code":0}`))

			err := tt.call(context.Background(), New(base+"/", r))

			require.NoError(t, err)
			r.AssertExpectations(t)
		})
	}
}

func TestResource_ReturnsBody(t *testing.T) {
	r := new(resourcetest.MockRequester)
	r.On("Request", mock.Anything, http.MethodGet, base, mock.Anything, mock.Anything).
		Return(nil).
		Run(resourcetest.Respond(`[{"id":1}]`))

	out, err := New(base, r).List(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(out))
}

func TestResource_PropagatesError(t *testing.T) {
	wantErr := &httpclient.StatusError{StatusCode: http.StatusInternalServerError}
	r := new(resourcetest.MockRequester)
	r.On("Request", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(wantErr)

	out, err := New(base, r).Add(context.Background(), map[string]any{})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, wantErr))
}

func TestResource_BaseURL(t *testing.T) {
	assert.Equal(t, base, New(base+"/", nil).BaseURL())
}
