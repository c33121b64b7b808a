package cadastro

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/viper"
)

// NewServiceTypeOption is the sentinel entry the UI appends to the category
// select to let the user create a new category on the spot. It is never a
// valid stored category.
const NewServiceTypeOption = "Novo tipo..."

// Config is the persisted application configuration. The service type list
// and the unit list are explicit configuration values handed to the app at
// startup; mutations are written back to the config file immediately.
type Config struct {
	viper        *viper.Viper
	ConfigDir    string   `mapstructure:"config_dir"`    // Current config dir.
	DatabaseFile string   `mapstructure:"database_file"` // File name of the SQLite registry, relative to the config dir.
	Units        []string `mapstructure:"units"`         // Billing units offered by the service form.
	ServiceTypes []string `mapstructure:"service_types"` // User-extensible service category labels.
}

// HasUnit reports whether the given unit is part of the configured unit set.
func (cfg *Config) HasUnit(unit string) bool {
	return slices.Contains(cfg.Units, unit)
}

// HasServiceType reports whether the given category is configured.
func (cfg *Config) HasServiceType(name string) bool {
	return slices.Contains(cfg.ServiceTypes, name)
}

// AddServiceType appends a new category label and persists the configuration.
func (cfg *Config) AddServiceType(name string) error {
	if name == "" {
		return errors.New("service type name is empty")
	}
	if name == NewServiceTypeOption {
		return errors.New("service type name is reserved")
	}
	if cfg.HasServiceType(name) {
		return fmt.Errorf("service type %q already exists", name)
	}
	cfg.ServiceTypes = append(cfg.ServiceTypes, name)
	cfg.viper.Set("service_types", cfg.ServiceTypes)
	if err := cfg.viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	if err := cfg.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	return nil
}

// DeleteServiceType removes a category label and persists the configuration.
func (cfg *Config) DeleteServiceType(name string) error {
	cfg.ServiceTypes = slices.DeleteFunc(cfg.ServiceTypes, func(s string) bool {
		return s == name
	})
	cfg.viper.Set("service_types", cfg.ServiceTypes)
	if err := cfg.viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	if err := cfg.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	return nil
}
