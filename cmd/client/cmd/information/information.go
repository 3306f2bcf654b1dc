package information

import (
	"github.com/spf13/cobra"

	"chipadmin/cmd/client/cmd/resource"
	"chipadmin/internal/app/client"
)

func NewCmd() *cobra.Command {
	return resource.NewCommand("information", "Управление справочником опций", func(app *client.App) resource.Ops {
		return resource.Ops{
			List:   app.Information.GetInfoList,
			Add:    app.Information.AddInfo,
			Update: app.Information.UpdateInfo,
			Delete: app.Information.DeleteInfo,
			Search: app.Information.SearchInfo,
		}
	})
}
