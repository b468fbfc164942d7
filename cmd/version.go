package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/iro-cli/iro/constant"
	"github.com/iro-cli/iro/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := struct {
			App      string
			Version  string
			OS       string
			Arch     string
			BuiltAt  string
			BuiltBy  string
			Revision string
		}{
			App:      constant.Iro,
			Version:  constant.Version,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint": style.Faint,
			"bold":  style.Bold,
			"swatch": func() string {
				return style.Swatch("da2c43", 1) + style.Swatch("0f4d92", 1) + style.Swatch("0073cf", 1)
			},
			"or": func(s, fallback string) string {
				if s == "" {
					return fallback
				}
				return s
			},
		}).Parse(`{{ swatch }} {{ bold .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Git Commit" }}  {{ bold (or .Revision "unknown") }}
  {{ faint "Build Date" }}  {{ bold (or .BuiltAt "unknown") }}
  {{ faint "Built By" }}    {{ bold (or .BuiltBy "unknown") }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), info))
	},
}
