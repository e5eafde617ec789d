package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-songfactory/internal/ownership"
	"github.com/IvanChernomyrdin/go-songfactory/internal/song"
)

// NewMakeCmd создаёт команду одного вызова фабрики.
//
// Песня создаётся, печатается через заимствование и уничтожается при выходе
// из команды. В trace видно ровно одно создание и одно уничтожение.
//
// Пример:
//
//	songfactory make --artist "Michael Jackson" --title "Beat It"
func NewMakeCmd(app *App) *cobra.Command {
	var artist, title string

	cmd := &cobra.Command{
		Use:   "make",
		Short: "Создать одну песню фабрикой",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			arena := song.NewArena(
				ownership.WithTracer[song.Song](newTracer(cmd, app.Config, app.Logger)),
				ownership.WithMaxSlots[song.Song](app.Config.Arena.MaxSlots),
			)
			defer func() {
				err = errors.Join(err, arena.Close())
			}()

			s, err := song.Factory(arena, artist, title)
			if err != nil {
				return err
			}
			defer s.Release()

			got := s.MustGet()
			fmt.Fprintf(cmd.OutOrStdout(), "artist=%s\ntitle=%s\nref=%s\n", got.Artist(), got.Title(), s.Ref())
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "song artist")
	cmd.Flags().StringVar(&title, "title", "", "song title")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
