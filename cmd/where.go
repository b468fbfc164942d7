package cmd

import (
	"os"

	"github.com/iro-cli/iro/config"
	"github.com/iro-cli/iro/style"
	"github.com/iro-cli/iro/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Config file", config.FilePath, "config-file", mo.None[string]()},
	{"Custom names", customNamesPath, "names", mo.Some("n")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
	{"History", where.History, "history", mo.None[string]()},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths used by iro",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(style.Mauve).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(style.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
