// Package router описывает навигационное дерево админ-панели: пути, имена,
// ссылки на представления и мета-данные меню.
package router

import "strings"

// Layout - общий каркас страницы, внутри которого рендерятся дочерние представления
const Layout = "layout/index"

// Meta - мета-данные пункта меню
type Meta struct {
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
	Rank  *int   `json:"rank,omitempty"`
	// ShowLink == nil означает, что пункт виден
	ShowLink *bool `json:"showLink,omitempty"`
}

// Visible сообщает, показывается ли пункт в меню
func (m Meta) Visible() bool {
	return m.ShowLink == nil || *m.ShowLink
}

// Route - запись навигационной таблицы.
// Component хранит путь модуля представления; загружает его потребитель таблицы.
type Route struct {
	Path      string  `json:"path"`
	Name      string  `json:"name"`
	Component string  `json:"component,omitempty"`
	Redirect  string  `json:"redirect,omitempty"`
	Meta      Meta    `json:"meta"`
	Children  []Route `json:"children,omitempty"`
}

// ShowLink вычисляет видимость пунктов по флагу окружения HIDE_HOME:
// пункты скрыты только при значении ровно "true"
func ShowLink(hideHome string) bool {
	return hideHome != "true"
}

// Flatten обходит дерево в глубину, родитель идет перед детьми
func Flatten(routes []Route) []Route {
	var out []Route
	for _, r := range routes {
		out = append(out, r)
		out = append(out, Flatten(r.Children)...)
	}
	return out
}

// Find ищет маршрут по пути без учета завершающего слэша
func Find(routes []Route, path string) (Route, bool) {
	want := normalize(path)
	for _, r := range Flatten(routes) {
		if normalize(r.Path) == want {
			return r, true
		}
	}
	return Route{}, false
}

func normalize(p string) string {
	if p == "/" || p == "" {
		return "/"
	}
	return "/" + strings.Trim(p, "/")
}

// Ptr возвращает указатель на копию v (для необязательных полей Meta)
func Ptr[T any](v T) *T {
	return &v
}
