package router

const (
	LocaleZhCN = "zh-CN"
	LocaleEn   = "en"
)

// Translator переводит ключ сообщения в заголовок меню
type Translator func(key string) string

var messages = map[string]map[string]string{
	LocaleZhCN: {
		"menus.pureHome": "首页",
	},
	LocaleEn: {
		"menus.pureHome": "Home",
	},
}

// Identity возвращает ключи как есть
func Identity(key string) string {
	return key
}

// Locale возвращает переводчик для локали; неизвестные ключи и локали
// остаются без перевода
func Locale(locale string) Translator {
	table, ok := messages[locale]
	if !ok {
		return Identity
	}
	return func(key string) string {
		if v, ok := table[key]; ok {
			return v
		}
		return key
	}
}
