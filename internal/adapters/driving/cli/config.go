package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change configuration",
	Long: `View and change values in the TOML config file.

Environment variables (PSYCHMATCH_MATCHING_REQUIREMENT, PSYCHMATCH_SMTP_HOST, ...)
override file values when the application starts.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		cmd.Println(a.ConfigStore.Path())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print configuration values",
	Long:  `Print one configuration value, or every recognised key when none is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value. Lists are comma separated.

Example:
  psychmatch config set matching.aspects test_property,shared_hobbies`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd, configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	keys := a.Config.Keys()
	if len(args) == 1 {
		keys = []string{args[0]}
	}

	for _, key := range keys {
		val, ok := a.ConfigStore.Get(key)
		if !ok {
			if len(args) == 1 {
				return fmt.Errorf("%s is not set", key)
			}
			cmd.Printf("%s = (unset)\n", key)
			continue
		}
		cmd.Printf("%s = %s\n", key, formatValue(key, val))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.Config.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s updated\n", args[0])
	return nil
}

func formatValue(key string, val any) string {
	if strings.HasSuffix(key, "password") {
		return "********"
	}
	switch v := val.(type) {
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
