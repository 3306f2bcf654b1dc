// cmd/client/cmd/init.go
package cmd

import (
	"chipadmin/cmd/client/cmd/chipform"
	"chipadmin/cmd/client/cmd/information"
	"chipadmin/cmd/client/cmd/routes"
	"chipadmin/cmd/client/cmd/users"
)

func init() {
	rootCmd.AddCommand(chipform.NewCmd())
	rootCmd.AddCommand(information.NewCmd())
	rootCmd.AddCommand(users.NewCmd())
	rootCmd.AddCommand(routes.RoutesCmd)
}
