package cmd

import (
	"os"
	"strings"

	"github.com/iro-cli/iro/config"
	"github.com/iro-cli/iro/constant"
	"github.com/iro-cli/iro/style"
	"github.com/iro-cli/iro/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

func envName(key string) string {
	if key == where.EnvConfigPath {
		return key
	}
	return strings.ToUpper(constant.Iro + "_" + config.EnvKeyReplacer.Replace(key))
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		vars := append(slices.Clone(config.EnvExposed), where.EnvConfigPath)
		slices.Sort(vars)

		for _, v := range vars {
			env := envName(v)
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(style.Mauve).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(style.Green)(value))
			} else {
				cmd.Println(style.Fg(style.Red)("unset"))
			}
		}
	},
}
