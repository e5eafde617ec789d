package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCmd создаёт команду вывода информации о сборке.
//
// Пример:
//
//	songfactory version
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию и дату сборки",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(),
				"songfactory %s (built %s, %s %s/%s)\n",
				buildVersion, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH,
			)
		},
	}
}
