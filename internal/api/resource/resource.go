// Package resource - общий CRUD-шаблон для ресурсов бэкенда админ-панели.
//
// Каждый ресурс живет под своим базовым адресом и поддерживает одинаковый набор
// маршрутов бэкенда: GET /, POST /add, POST /update, DELETE /delete/:id, POST /search.
package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"chipadmin/internal/utils/httpclient"
)

// Requester - общий HTTP-помощник, которому делегируются все запросы
type Requester interface {
	Request(ctx context.Context, method, url string, opts *httpclient.RequestOptions, out any) error
}

// Resource - клиент одного ресурса бэкенда
type Resource struct {
	base string
	r    Requester
}

func New(base string, r Requester) *Resource {
	return &Resource{
		base: strings.TrimRight(base, "/"),
		r:    r,
	}
}

// BaseURL возвращает базовый адрес ресурса
func (res *Resource) BaseURL() string {
	return res.base
}

// List получает весь список (router.get('/'))
func (res *Resource) List(ctx context.Context) (json.RawMessage, error) {
	return res.do(ctx, http.MethodGet, res.base, nil)
}

// Add создает запись (router.post('/add'))
func (res *Resource) Add(ctx context.Context, data any) (json.RawMessage, error) {
	return res.do(ctx, http.MethodPost, res.base+"/add", data)
}

// Update изменяет запись (router.post('/update'))
func (res *Resource) Update(ctx context.Context, data any) (json.RawMessage, error) {
	return res.do(ctx, http.MethodPost, res.base+"/update", data)
}

// Delete удаляет запись по id (router.delete('/delete/:id'))
func (res *Resource) Delete(ctx context.Context, id int) (json.RawMessage, error) {
	return res.do(ctx, http.MethodDelete, fmt.Sprintf("%s/delete/%d", res.base, id), nil)
}

// Search ищет записи по условию (router.post('/search'))
func (res *Resource) Search(ctx context.Context, data any) (json.RawMessage, error) {
	return res.do(ctx, http.MethodPost, res.base+"/search", data)
}

// Get выполняет GET по подпути ресурса, например options/information
func (res *Resource) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return res.do(ctx, http.MethodGet, res.base+"/"+strings.TrimLeft(path, "/"), nil)
}

func (res *Resource) do(ctx context.Context, method, url string, data any) (json.RawMessage, error) {
	var opts *httpclient.RequestOptions
	if data != nil {
		opts = &httpclient.RequestOptions{Data: data}
	}

	var out json.RawMessage
	if err := res.r.Request(ctx, method, url, opts, &out); err != nil {
		return nil, err
	}

	return out, nil
}
