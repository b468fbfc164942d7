package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/iro-cli/iro/config"
	"github.com/iro-cli/iro/filesystem"
	"github.com/iro-cli/iro/icon"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// keyArg takes the key from the first argument, falling back to --key.
func keyArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if k := lo.Must(cmd.Flags().GetString("key")); k != "" {
		return k, nil
	}

	return "", errors.New("key is required as an argument or --key flag")
}

// setValue parses raw for k, applies it and saves the config file.
func setValue(k string, raw []string) (any, error) {
	v, err := config.Parse(k, raw)
	if err != nil {
		return nil, err
	}

	viper.Set(k, v)
	return v, config.Write()
}

// resetValues restores keys to their defaults and saves the config file.
// With no keys every field is reset.
func resetValues(keys ...string) error {
	if len(keys) == 0 {
		keys = lo.Keys(config.Default)
	}

	for _, k := range keys {
		field, err := config.Lookup(k)
		if err != nil {
			return err
		}
		viper.Set(k, field.Value)
	}

	return config.Write()
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)

		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, k := range keys {
				field, err := config.Lookup(k)
				handleErr(err)
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if viper.GetBool(key.OutputJson) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Print("\n\n")
			}
			cmd.Print(fields[i].Pretty())
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := keyArg(cmd, args)
		handleErr(err)

		field, err := config.Lookup(k)
		handleErr(err)

		if viper.GetBool(key.OutputJson) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(&field))
			return
		}

		cmd.Println(viper.Get(k))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "New value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	_ = configSetCmd.RegisterFlagCompletionFunc("value", func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 && args[0] == key.IconsVariant {
			return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	})
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Update and save the value of a key",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := keyArg(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		v, err := setValue(k, raw)
		handleErr(err)

		success("set %s to %s", style.Fg(style.Mauve)(k), style.Fg(style.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a key, or every key, to its default value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			handleErr(resetValues())
			success("reset every key")
			return
		}

		k, err := keyArg(cmd, args)
		handleErr(err)
		handleErr(resetValues(k))

		success("reset %s to %s", style.Fg(style.Mauve)(k), style.Fg(style.Yellow)(fmt.Sprint(config.Default[k].Value)))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Save the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.FilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if exists, _ := filesystem.API().Exists(path); exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(config.FilePath()))
		success("deleted %s", config.FilePath())
	},
}
