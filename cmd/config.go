package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marketlint/marketlint/internal/config"
	"github.com/marketlint/marketlint/internal/i18n"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage marketlint configuration",
	Long: `Manage marketlint configuration settings.

Example:
  marketlint config show
  marketlint config set defaults.strict true`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  locale                       - Language setting
                                 Values: auto, en-US, ko-KR, etc.
  defaults.strict              - Treat missing recommended fields as blocking
                                 Values: true, false
  defaults.format              - Default output format
                                 Values: text, json, markdown, compact
  defaults.backend             - Default JSON backend
                                 Values: auto, jq, native
  defaults.checkGitignore      - Soften findings for gitignored files
                                 Values: true, false

Example:
  marketlint config set locale ko-KR
  marketlint config set defaults.format json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println(i18n.T("ConfigHeader", nil))
	fmt.Println("----------------------------------------")
	fmt.Printf("  locale: %s\n", cfg.Locale)
	fmt.Printf("  defaults.strict: %t\n", cfg.Defaults.Strict)
	fmt.Printf("  defaults.format: %s\n", cfg.Defaults.Format)
	fmt.Printf("  defaults.backend: %s\n", cfg.Defaults.Backend)
	fmt.Printf("  defaults.checkGitignore: %t\n", cfg.Defaults.CheckGitignore)
	fmt.Printf("  defaults.checkCodePatterns: %t\n", cfg.Defaults.CheckCodePatterns)

	fmt.Println()
	fmt.Println("Locale:")
	if cfg.Locale == "auto" {
		fmt.Printf("  %s\n", i18n.T("ConfigLocaleAuto", nil))
	} else {
		fmt.Printf("  %s\n", i18n.T("ConfigLocaleFixed", map[string]interface{}{"Locale": cfg.Locale}))
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := applyConfigSet(args[0], args[1]); err != nil {
		return err
	}
	// Re-read the file so the in-process singleton matches what later
	// commands will load.
	return config.Reload()
}

func applyConfigSet(key, value string) error {
	switch key {
	case "locale":
		if err := config.SetLocale(value); err != nil {
			return err
		}
		fmt.Println(i18n.T("ConfigLocaleSet", map[string]interface{}{"Locale": value}))
		return nil

	case "defaults.strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf(i18n.T("InvalidConfigValue", map[string]interface{}{"Value": value, "Key": key, "Valid": "true, false"}))
		}
		return config.SetStrict(b)

	case "defaults.format":
		switch value {
		case "text", "json", "markdown", "compact":
			return config.SetFormat(value)
		default:
			return fmt.Errorf(i18n.T("InvalidConfigValue", map[string]interface{}{"Value": value, "Key": key, "Valid": "text, json, markdown, compact"}))
		}

	case "defaults.backend":
		switch value {
		case "auto", "jq", "native":
			cfg := config.Get()
			cfg.Defaults.Backend = value
			return config.Save(cfg)
		default:
			return fmt.Errorf(i18n.T("InvalidConfigValue", map[string]interface{}{"Value": value, "Key": key, "Valid": "auto, jq, native"}))
		}

	case "defaults.checkGitignore":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf(i18n.T("InvalidConfigValue", map[string]interface{}{"Value": value, "Key": key, "Valid": "true, false"}))
		}
		cfg := config.Get()
		cfg.Defaults.CheckGitignore = b
		return config.Save(cfg)

	default:
		return fmt.Errorf(i18n.T("UnknownConfigKey", map[string]interface{}{"Key": key}))
	}
}
