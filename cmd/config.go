package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// redactedKeys hold secrets that are never printed.
var redactedKeys = map[string]struct{}{
	"history-db-connect": {},
}

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after merging defaults, the config file,
FAITHBOARD_ environment variables (and .env) and flags.

The output is a valid .faithboard.yaml. Connection strings are redacted.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		if file := viper.ConfigFileUsed(); file != "" {
			_, _ = fmt.Fprintf(os.Stderr, "# from %s\n", file)
		}
		if err := writeConfigYAML(os.Stdout, viper.AllSettings()); err != nil {
			contract.LogFatal("Failed to print config", err)
		}
	},
}

// writeConfigYAML writes settings with sorted keys, redacting secrets.
func writeConfigYAML(w io.Writer, settings map[string]any) error {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		if k == "config" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		v := settings[k]
		if _, secret := redactedKeys[k]; secret && fmt.Sprint(v) != "" {
			v = "REDACTED"
		}
		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return fmt.Errorf("failed to encode %s: %w", k, err)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, &value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
