// Package resourcetest содержит мок HTTP-помощника для тестов API-модулей
package resourcetest

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chipadmin/internal/utils/httpclient"
)

type MockRequester struct {
	mock.Mock
}

func (m *MockRequester) Request(ctx context.Context, method, url string, opts *httpclient.RequestOptions, out any) error {
	args := m.Called(ctx, method, url, opts, out)
	return args.Error(0)
}

// Respond записывает body в out, переданный в Request
func Respond(body string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		if raw, ok := args.Get(4).(*json.RawMessage); ok {
			*raw = json.RawMessage(body)
		}
	}
}

// WithData проверяет, что тело запроса передано без изменений
func WithData(data any) any {
	return mock.MatchedBy(func(opts *httpclient.RequestOptions) bool {
		return opts != nil && assert.ObjectsAreEqual(data, opts.Data)
	})
}

// NoBody проверяет, что запрос отправляется без тела
func NoBody() any {
	return mock.MatchedBy(func(opts *httpclient.RequestOptions) bool {
		return opts == nil || opts.Data == nil
	})
}
