package routes

import "chipadmin/internal/router"

// Input - параметры запроса навигационного дерева
type Input struct {
	Locale string `query:"locale" doc:"Locale for menu titles (zh-CN, en)" example:"en"`
}

// Output - ответ в формате асинхронных маршрутов шаблона панели
type Output struct {
	Body Response
}

type Response struct {
	Success bool           `json:"success" example:"true"`
	Data    []router.Route `json:"data"`
}
