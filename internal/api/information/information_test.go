package information

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chipadmin/internal/api/resource/resourcetest"
)

func TestAPI_Calls(t *testing.T) {
	payload := map[string]any{"label": "Type A", "value": "a"}

	tests := []struct {
		name       string
		call       func(ctx context.Context, a *API) error
		wantMethod string
		wantURL    string
		wantOpts   any
	}{
		{
			name:       "GetInfoList",
			call:       func(ctx context.Context, a *API) error { _, err := a.GetInfoList(ctx); return err },
			wantMethod: http.MethodGet,
			wantURL:    "http://47.250.152.216:3001/api/information",
			wantOpts:   resourcetest.NoBody(),
		},
		{
			name:       "AddInfo",
			call:       func(ctx context.Context, a *API) error { _, err := a.AddInfo(ctx, payload); return err },
			wantMethod: http.MethodPost,
			wantURL:    BaseURL + "/add",
			wantOpts:   resourcetest.WithData(payload),
		},
		{
			name:       "UpdateInfo",
			call:       func(ctx context.Context, a *API) error { _, err := a.UpdateInfo(ctx, payload); return err },
			wantMethod: http.MethodPost,
			wantURL:    BaseURL + "/update",
			wantOpts:   resourcetest.WithData(payload),
		},
		{
			name:       "DeleteInfo",
			call:       func(ctx context.Context, a *API) error { _, err := a.DeleteInfo(ctx, 9); return err },
			wantMethod: http.MethodDelete,
			wantURL:    BaseURL + "/delete/9",
			wantOpts:   resourcetest.NoBody(),
		},
		{
			name:       "SearchInfo",
			call:       func(ctx context.Context, a *API) error { _, err := a.SearchInfo(ctx, payload); return err },
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
