package cmd

import (
	"encoding/json"
	"os"

	"github.com/iro-cli/iro/history"
	"github.com/iro-cli/iro/icon"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/style"
	"github.com/iro-cli/iro/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("clear", "c", false, "Forget every remembered color")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently converted colors",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			cmd.Printf("%s history cleared\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)))
			return
		}

		records, err := history.Get()
		handleErr(err)

		if viper.GetBool(key.OutputJson) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		cmd.Println(style.Faint(util.Quantify(len(records), "color", "colors")))
		for _, r := range records {
			name := style.Faint("unnamed")
			if r.Name != "" {
				name = r.Name
			}

			cmd.Printf(
				"%s %s %s %s %s\n",
				style.Swatch(r.Hex, 2),
				style.Fg(style.AccentColor)("#"+r.Hex),
				name,
				style.Faint("from "+r.Input),
				style.Faint(r.Time.Format("2006-01-02 15:04")),
			)
		}
	},
}
