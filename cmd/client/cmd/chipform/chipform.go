package chipform

import (
	"github.com/spf13/cobra"

	"chipadmin/cmd/client/cmd/resource"
	"chipadmin/cmd/client/cmd/types"
	"chipadmin/internal/app/client"
)

func ops(app *client.App) resource.Ops {
	return resource.Ops{
		List:   app.ChipForm.GetChipList,
		Add:    app.ChipForm.AddChip,
		Update: app.ChipForm.UpdateChip,
		Delete: app.ChipForm.DeleteChip,
		Search: app.ChipForm.SearchChip,
	}
}

// NewCmd - команда формы чипов; дополнительно умеет получать опции выпадающего списка
func NewCmd() *cobra.Command {
	cmd := resource.NewCommand("chipform", "Управление формами чипов", ops)

	cmd.AddCommand(&cobra.Command{
		Use:   "options",
		Short: "Получить опции выпадающего списка справочника",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			return resource.Print(cmd.OutOrStdout())(app.ChipForm.GetChipOptions(cmd.Context()))
		},
	})

	return cmd
}
