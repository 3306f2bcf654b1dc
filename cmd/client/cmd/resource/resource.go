// Package resource собирает типовые подкоманды ресурса бэкенда:
// list, add, update, delete, search
package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"chipadmin/cmd/client/cmd/types"
	"chipadmin/internal/app/client"
)

var (
	ErrInvalidID      = errors.New("неверный ID записи")
	ErrEmptyPayload   = errors.New("пустое тело запроса")
	ErrInvalidPayload = errors.New("тело запроса не является корректным JSON")
)

type (
	ListFunc   func(ctx context.Context) (json.RawMessage, error)
	DataFunc   func(ctx context.Context, data any) (json.RawMessage, error)
	DeleteFunc func(ctx context.Context, id int) (json.RawMessage, error)
)

// Ops - операции одного ресурса
type Ops struct {
	List   ListFunc
	Add    DataFunc
	Update DataFunc
	Delete DeleteFunc
	Search DataFunc
}

// OpsFor выбирает операции ресурса у приложения
type OpsFor func(app *client.App) Ops

// NewCommand создает родительскую команду ресурса со стандартными подкомандами
func NewCommand(use, short string, opsFor OpsFor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

Тело запросов add, update и search передается JSON-аргументом,
через --file или через stdin (аргумент "-").`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Получить список записей",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ops, err := resolve(cmd, opsFor)
				if err != nil {
					return err
				}
				return Print(cmd.OutOrStdout())(ops.List(cmd.Context()))
			},
		},
		dataCommand("add", "Создать запись", func(o Ops) DataFunc { return o.Add }, opsFor),
		dataCommand("update", "Изменить запись", func(o Ops) DataFunc { return o.Update }, opsFor),
		dataCommand("search", "Найти записи по условию", func(o Ops) DataFunc { return o.Search }, opsFor),
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Удалить запись по ID",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: %q", ErrInvalidID, args[0])
				}
				ops, err := resolve(cmd, opsFor)
				if err != nil {
					return err
				}
				return Print(cmd.OutOrStdout())(ops.Delete(cmd.Context(), id))
			},
		},
	)

	return cmd
}

func dataCommand(use, short string, pick func(Ops) DataFunc, opsFor OpsFor) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   use + " [json]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := ReadPayload(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			ops, err := resolve(cmd, opsFor)
			if err != nil {
				return err
			}
			return Print(cmd.OutOrStdout())(pick(ops)(cmd.Context(), payload))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "путь к JSON-файлу с телом запроса")

	return cmd
}

func resolve(cmd *cobra.Command, opsFor OpsFor) (Ops, error) {
	app, err := types.App(cmd)
	if err != nil {
		return Ops{}, err
	}
	return opsFor(app), nil
}

// ReadPayload читает тело запроса из аргумента, файла или stdin.
// JSON отправляется как есть, без перекодирования.
func ReadPayload(stdin io.Reader, args []string, file string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case file != "":
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения файла: %w", err)
		}
	case len(args) == 1 && args[0] != "-":
		data = []byte(args[0])
	default:
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения stdin: %w", err)
		}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	if !json.Valid(data) {
		return nil, ErrInvalidPayload
	}

	return json.RawMessage(data), nil
}

// Print возвращает функцию, печатающую ответ бэкенда с отступами
func Print(w io.Writer) func(json.RawMessage, error) error {
	return func(body json.RawMessage, err error) error {
		if err != nil {
			return err
		}
		if len(body) == 0 {
			return nil
		}

		var out bytes.Buffer
		if json.Valid(body) {
			if err := json.Indent(&out, body, "", "  "); err != nil {
				return fmt.Errorf("ошибка форматирования ответа: %w", err)
			}
		} else {
			out.Write(body)
		}
		out.WriteByte('\n')

		_, err = w.Write(out.Bytes())
		return err
	}
}
