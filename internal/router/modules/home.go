// Package modules содержит статические модули навигации панели.
package modules

import "chipadmin/internal/router"

// Home - корневой маршрут "/" с разделами формы чипов, справочника и пользователей.
// hideHome - значение флага окружения HIDE_HOME.
func Home(hideHome string, t router.Translator) router.Route {
	if t == nil {
		t = router.Identity
	}
	show := router.ShowLink(hideHome)

	return router.Route{
		Path:      "/",
		Name:      "Home",
		Component: router.Layout,
		Redirect:  "/chipfrom",
		Meta: router.Meta{
			Icon:  "ep/home-filled",
			Title: t("menus.pureHome"),
			Rank:  router.Ptr(0),
		},
		Children: []router.Route{
			{
				Path:      "/chipfrom",
				Name:      "Chipfrom",
				Component: "views/chipfrom/index",
				Meta: router.Meta{
					Title:    "chipfrom",
					ShowLink: router.Ptr(show),
				},
			},
			{
				Path:      "/information",
				Name:      "Information",
				Component: "views/information/index",
				Meta: router.Meta{
					Title:    "information",
					ShowLink: router.Ptr(show),
				},
			},
			{
				Path:      "/users",
				Name:      "Users",
				Component: "views/users/index",
				Meta: router.Meta{
					Title:    "users",
					ShowLink: router.Ptr(show),
				},
			},
		},
	}
}

// All возвращает все статические модули навигации
func All(hideHome string, t router.Translator) []router.Route {
	return []router.Route{
		Home(hideHome, t),
	}
}
