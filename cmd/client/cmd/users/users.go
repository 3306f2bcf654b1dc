package users

import (
	"github.com/spf13/cobra"

	"chipadmin/cmd/client/cmd/resource"
	"chipadmin/internal/app/client"
)

func NewCmd() *cobra.Command {
	return resource.NewCommand("users", "Управление пользователями", func(app *client.App) resource.Ops {
		return resource.Ops{
			List:   app.Users.GetUserList,
			Add:    app.Users.AddUser,
			Update: app.Users.UpdateUser,
			Delete: app.Users.DeleteUser,
			Search: app.Users.SearchUser,
		}
	})
}
