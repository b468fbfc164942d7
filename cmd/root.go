// Package cmd implements the command-line interface for iro.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/iro-cli/iro/constant"
	"github.com/iro-cli/iro/icon"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/log"
	"github.com/iro-cli/iro/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringArrayP("rgb", "r", []string{}, `Convert from red, green and blue bytes, e.g. "0,115,207" or "rgb(0 115 207)"`)
	rootCmd.Flags().StringArrayP("hsl", "H", []string{}, `Convert from hue, saturation and lightness, e.g. "206.67,1,0.41" or "hsl(206.67, 100%, 41%)"`)

	rootCmd.PersistentFlags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(viper.BindPFlag(key.OutputJson, rootCmd.PersistentFlags().Lookup("json")))

	rootCmd.Flags().IntP("swatch", "w", 8, "Width of the color swatch, 0 to disable")
	lo.Must0(viper.BindPFlag(key.OutputSwatchWidth, rootCmd.Flags().Lookup("swatch")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, nerd, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-history", false, "Do not remember converted colors")
}

var rootCmd = &cobra.Command{
	Use:   constant.Iro + " [color...]",
	Short: "Convert between hex codes, RGB, HSL and color names",
	Long: style.Title(constant.Iro) + "\n\n" +
		style.Italic("Convert between hex codes, RGB, HSL and color names.") + "\n\n" +
		"Each argument is either a color name, such as \"yale blue\", or a 6-digit hex code with an optional leading '#'.",
	Example: strings.Join([]string{
		`  iro da2c43`,
		`  iro "yale blue" "#0073cf"`,
		`  iro --rgb 0,115,207 --hsl "hsl(352, 70%, 51%)"`,
	}, "\n"),
	ValidArgsFunction: completionColorNames,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("no-history")) {
			viper.Set(key.HistorySave, false)
		}

		rgb := lo.Must(cmd.Flags().GetStringArray("rgb"))
		hsl := lo.Must(cmd.Flags().GetStringArray("hsl"))

		if len(args) == 0 && len(rgb) == 0 && len(hsl) == 0 {
			_ = cmd.Help()
			return
		}

		handleErr(runConvert(cmd.OutOrStdout(), &convertRequest{
			Inputs: args,
			RGB:    rgb,
			HSL:    hsl,
		}))
	},
}

// Execute wires colored help output and runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
