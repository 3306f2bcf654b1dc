// Package information - API справочника опций (app.use('/api/information', infoRouter)).
package information

import (
	"context"
	"encoding/json"

	"chipadmin/internal/api/resource"
)

const BaseURL = "http://47.250.152.216:3001/api/information"

type API struct {
	res *resource.Resource
}

func New(r resource.Requester) *API {
	return &API{res: resource.New(BaseURL, r)}
}

func (a *API) GetInfoList(ctx context.Context) (json.RawMessage, error) {
	return a.res.List(ctx)
}

func (a *API) AddInfo(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Add(ctx, data)
}

func (a *API) UpdateInfo(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Update(ctx, data)
}

func (a *API) DeleteInfo(ctx context.Context, id int) (json.RawMessage, error) {
	return a.res.Delete(ctx, id)
}

func (a *API) SearchInfo(ctx context.Context, data any) (json.RawMessage, error) {
	return a.res.Search(ctx, data)
}
