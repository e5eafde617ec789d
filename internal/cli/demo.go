package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-songfactory/internal/config"
	"github.com/IvanChernomyrdin/go-songfactory/internal/ownership"
)

// NewDemoCmd создаёт команду полной демонстрации.
//
// Команда:
//   - вызывает фабрику и печатает полученную песню через заимствование;
//   - перемещает песни из demo.songs в Vector;
//   - обходит Vector по ссылкам (Borrowed и Slots);
//   - при выходе уничтожает всё и печатает итоговые счётчики.
//
// Trace событий идёт в stdout (см. trace.output).
//
// Пример:
//
//	songfactory demo --order reverse
func NewDemoCmd(app *App) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Запустить демонстрацию владения",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if order != "" {
				o, err := ownership.ParseOrder(order)
				if err != nil {
					return err
				}
				cfg.Trace.DestroyOrder = o.String()
			}

			tracer := newTracer(cmd, cfg, app.Logger)
			rep, err := NewDriver(cfg, cmd.OutOrStdout(), tracer, app.Logger).Run()
			if err != nil {
				return fmt.Errorf("demo failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"constructed=%d destroyed=%d visited=%d iteration_events=%d order=%s\n",
				rep.Constructed, rep.Destroyed, rep.Visited, rep.IterationEvents, cfg.Trace.DestroyOrder,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "", fmt.Sprintf("vector destroy order: %s|%s (overrides config)", config.OrderForward, config.OrderReverse))
	return cmd
}
