package users

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chipadmin/internal/api/resource/resourcetest"
)

func TestAPI_AddUser(t *testing.T) {
	payload := map[string]any{"name": "a"}

	r := new(resourcetest.MockRequester)
	r.On("Request", mock.Anything, http.MethodPost, "http://47.250.152.216:3001/api/users/add", resourcetest.WithData(payload), mock.Anything).
		Return(nil)

	_, err := New(r).AddUser(context.Background(), payload)

	require.NoError(t, err)
	r.AssertExpectations(t)
}

func TestAPI_Calls(t *testing.T) {
	payload := map[string]any{"username": "admin"}

	tests := []struct {
		name       string
		call       func(ctx context.Context, a *API) error
		wantMethod string
		wantURL    string
		wantOpts   any
	}{
		{
			name:       "GetUserList",
			call:       func(ctx context.Context, a *API) error { _, err := a.GetUserList(ctx); return err },
			wantMethod: http.MethodGet,
			wantURL:    BaseURL,
			wantOpts:   resourcetest.NoBody(),
		},
		{
			name:       "UpdateUser",
			call:       func(ctx context.Context, a *API) error { _, err := a.UpdateUser(ctx, payload); return err },
			wantMethod: http.MethodPost,
			wantURL:    BaseURL + "/update",
			wantOpts:   resourcetest.WithData(payload),
		},
		{
			name:       "DeleteUser",
			call:       func(ctx context.Context, a *API) error { _, err := a.DeleteUser(ctx, 5); return err },
			wantMethod: http.MethodDelete,
			wantURL:    BaseURL + "/delete/5",
			wantOpts:   resourcetest.NoBody(),
		},
		{
			name:       "SearchUser",
			call:       func(ctx context.Context, a *API) error { _, err := a.SearchUser(ctx, payload); return err },
			wantMethod: http.MethodPost,
			wantURL:    BaseURL + "/search",
			wantOpts:   resourcetest.WithData(payload),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(resourcetest.MockRequester)
			r.On("Request", mock.Anything, tt.wantMethod, tt.wantURL, tt.wantOpts, mock.Anything).Return(nil)

			require.NoError(t, tt.call(context.Background(), New(r)))
			r.AssertExpectations(t)
		})
	}
}
