// Package users - API пользователей панели.
package users

import (
	"context"
	"encoding/json"

	"chipadmin/internal/api/resource"
)

const BaseURL = "http://47.250.152.216:3001/api/users"

type API struct {
	res *resource.Resource
}

func New(r resource.Requester) *API {
	return &API{res: resource.New(BaseURL, r)}
}

// GetUserList получает список пользователей
func (a *API) GetUserList(ctx context.Context) (json.RawMessage, error) {
	return a.res.List(ctx)
}

// AddUser добавляет пользователя
func (a *API) AddUser(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Add(ctx, data)
}

// UpdateUser изменяет пользователя
func (a *API) UpdateUser(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Update(ctx, data)
}

// DeleteUser удаляет пользователя
func (a *API) DeleteUser(ctx context.Context, id int) (json.RawMessage, error) {
	return a.res.Delete(ctx, id)
}

// SearchUser ищет пользователей
func (a *API) SearchUser(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Search(ctx, data)
}
