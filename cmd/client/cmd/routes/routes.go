package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chipadmin/cmd/client/cmd/types"
	"chipadmin/internal/router"
)

var (
	routesFormat string
	routesLocale string
)

var RoutesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Показать навигационное дерево панели",
	Long: `Выводит маршруты панели и видимость пунктов меню.

Видимость дочерних пунктов управляется переменной окружения HIDE_HOME:
при значении "true" пункты скрыты из меню.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		format := routesFormat
		if format == "" {
			format = "json"
			if term.IsTerminal(int(os.Stdout.Fd())) {
				format = "table"
			}
		}

		routes := app.Routes(routesLocale)

		switch format {
		case "json":
			return printRoutesJSON(cmd.OutOrStdout(), routes)
		case "table":
			return printRoutesTable(cmd.OutOrStdout(), routes)
		default:
			return fmt.Errorf("неподдерживаемый формат вывода: %s", format)
		}
	},
}

func printRoutesJSON(w io.Writer, routes []router.Route) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(routes)
}

func printRoutesTable(w io.Writer, routes []router.Route) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Путь\tИмя\tЗаголовок\tПредставление\tВ меню\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t\n")

	var walk func(routes []router.Route, depth int)
	walk = func(routes []router.Route, depth int) {
		for _, r := range routes {
			visible := color.GreenString("да")
			if !r.Meta.Visible() {
				visible = color.RedString("нет")
			}

			fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t\n",
				strings.Repeat("  ", depth),
				r.Path,
				r.Name,
				r.Meta.Title,
				r.Component,
				visible,
			)
			walk(r.Children, depth+1)
		}
	}
	walk(routes, 0)

	return tw.Flush()
}

func init() {
	RoutesCmd.Flags().StringVarP(&routesFormat, "format", "f", "", "формат вывода (table, json); по умолчанию table для терминала")
	RoutesCmd.Flags().StringVarP(&routesLocale, "locale", "l", router.LocaleZhCN, "локаль заголовков меню (zh-CN, en)")
}
