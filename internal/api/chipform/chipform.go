// Package chipform - API формы чипов.
// Бэкенд монтирует роутер как app.use('/api/chipform', chipFormRouter) на порту 3001.
package chipform

import (
	"context"
	"encoding/json"

	"chipadmin/internal/api/resource"
)

const BaseURL = "http://47.250.152.216:3001/api/chipform"

const optionsPath = "options/information"

type API struct {
	res *resource.Resource
}

func New(r resource.Requester) *API {
	return &API{res: resource.New(BaseURL, r)}
}

// GetChipList получает список данных
func (a *API) GetChipList(ctx context.Context) (json.RawMessage, error) {
	return a.res.List(ctx)
}

// AddChip добавляет данные
func (a *API) AddChip(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Add(ctx, data)
}

// UpdateChip изменяет данные
func (a *API) UpdateChip(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Update(ctx, data)
}

// DeleteChip удаляет данные
func (a *API) DeleteChip(ctx context.Context, id int) (json.RawMessage, error) {
	return a.res.Delete(ctx, id)
}

// SearchChip ищет данные
func (a *API) SearchChip(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Search(ctx, data)
}

// GetChipOptions получает опции выпадающего списка (router.get('/options/information'))
func (a *API) GetChipOptions(ctx context.Context) (json.RawMessage, error) {
	return a.res.Get(ctx, optionsPath)
}
