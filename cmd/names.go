package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/iro-cli/iro/icon"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/names"
	"github.com/iro-cli/iro/style"
	"github.com/iro-cli/iro/util"
	"github.com/iro-cli/iro/where"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func customNamesPath() string {
	if path := viper.GetString(key.NamesCustomFile); path != "" {
		return path
	}
	return where.Names()
}

func init() {
	rootCmd.AddCommand(namesCmd)

	namesCmd.Flags().StringP("search", "s", "", "Fuzzy search names")
	namesCmd.Flags().IntP("limit", "n", 0, "Maximum number of names to show, 0 for all")
	namesCmd.Flags().Bool("custom", false, "Show only user-defined names")
	namesCmd.SetOut(os.Stdout)
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List and search known color names",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			search = lo.Must(cmd.Flags().GetString("search"))
			limit  = lo.Must(cmd.Flags().GetInt("limit"))
			custom = lo.Must(cmd.Flags().GetBool("custom"))
		)

		var table *names.Table
		if custom {
			entries, err := names.LoadCustom(customNamesPath())
			handleErr(err)
			table = names.New(entries)
		} else {
			var err error
			table, err = nameTable()
			handleErr(err)
		}

		var entries []names.Entry
		if search != "" {
			entries = table.Search(search, limit)
		} else {
			entries = table.Entries()
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
		}

		if viper.GetBool(key.OutputJson) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("no names found"))
			return
		}

		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			width = 80
		}

		nameWidth := util.Max(lo.Map(entries, func(e names.Entry, _ int) int {
			return len(e.Name)
		})...)

		for _, e := range entries {
			line := fmt.Sprintf(
				"%s %s %s",
				style.Swatch(e.Hex, 2),
				padding.String(e.Name, uint(nameWidth)),
				style.Faint("#"+e.Hex),
			)
			cmd.Println(truncate.StringWithTail(line, uint(width), "…"))
		}
	},
}

func init() {
	namesCmd.AddCommand(namesAddCmd)
}

var namesAddCmd = &cobra.Command{
	Use:   "add [name] [hex]",
	Short: "Add or replace a user-defined color name",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := addCustomName(customNamesPath(), args[0], args[1])
		handleErr(err)

		fmt.Printf(
			"%s %s is now %s %s\n",
			style.Fg(style.SuccessColor)(icon.Get(icon.Success)),
			style.Fg(style.Mauve)(entry.Name),
			style.Swatch(entry.Hex, 2),
			style.Fg(style.Yellow)("#"+entry.Hex),
		)
	},
}

// addCustomName stores name for hex in the custom names file at path,
// replacing an earlier entry with the same name.
func addCustomName(path, name, hex string) (names.Entry, error) {
	name = names.NormalizeName(name)
	if name == "" {
		return names.Entry{}, errors.New("color name is empty")
	}

	normalized, ok := names.NormalizeHex(hex)
	if !ok {
		return names.Entry{}, fmt.Errorf("invalid hex code %q", hex)
	}

	entries, err := names.LoadCustom(path)
	if err != nil {
		return names.Entry{}, err
	}

	entry := names.Entry{Name: name, Hex: normalized}
	entries = lo.Reject(entries, func(e names.Entry, _ int) bool {
		return e.Name == name
	})
	entries = append(entries, entry)

	return entry, names.SaveCustom(path, entries)
}

func init() {
	namesCmd.AddCommand(namesRemoveCmd)
}

var namesRemoveCmd = &cobra.Command{
	Use:     "remove [name]",
	Short:   "Remove a user-defined color name",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := names.NormalizeName(args[0])
		handleErr(removeCustomName(customNamesPath(), name))

		fmt.Printf("%s removed %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), style.Fg(style.Mauve)(name))
	},
}

// removeCustomName deletes name from the custom names file at path.
// Built-in names cannot be removed.
func removeCustomName(path, name string) error {
	name = names.NormalizeName(name)

	entries, err := names.LoadCustom(path)
	if err != nil {
		return err
	}

	kept := lo.Reject(entries, func(e names.Entry, _ int) bool {
		return e.Name == name
	})
	if len(kept) == len(entries) {
		return fmt.Errorf("%s is not a user-defined name", name)
	}

	return names.SaveCustom(path, kept)
}
