// Package config loads layered application configuration: a global file in the
// user's cmdscope directory overlaid by a local file in the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/cmdscope/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	List   ListCommandConfiguration `mapstructure:"list"`
	Deploy DeployConfiguration      `mapstructure:"deploy"`
}

// ListCommandConfiguration defines defaults for the list command.
type ListCommandConfiguration struct {
	IncludeHelp *bool  `mapstructure:"include_help"`
	Indent      *int   `mapstructure:"indent"`
	Color       *bool  `mapstructure:"color"`
	Prefix      string `mapstructure:"prefix"`
	SkipCache   *bool  `mapstructure:"skip_cache"`
	Copy        *bool  `mapstructure:"copy"`
}

// DeployConfiguration groups settings for the deploy targets.
type DeployConfiguration struct {
	AwsS3       AwsS3Configuration       `mapstructure:"aws_s3"`
	AzureWebApp AzureWebAppConfiguration `mapstructure:"azure_web_app"`
}

// AwsS3Configuration configures the aws-s3 deploy target.
type AwsS3Configuration struct {
	Bucket          string `mapstructure:"bucket"`
	SourceDirectory string `mapstructure:"source"`
}

// AzureWebAppConfiguration configures the azure-web-app deploy target.
type AzureWebAppConfiguration struct {
	AppName       string `mapstructure:"app_name"`
	ResourceGroup string `mapstructure:"resource_group"`
	Location      string `mapstructure:"location"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeDirectoryError := os.UserHomeDir(); homeDirectoryError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if fileInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	result.List = result.List.merge(override.List)
	result.Deploy = result.Deploy.merge(override.Deploy)
	return result
}

func (configuration ListCommandConfiguration) merge(override ListCommandConfiguration) ListCommandConfiguration {
	result := configuration
	if override.IncludeHelp != nil {
		result.IncludeHelp = cloneBool(override.IncludeHelp)
	}
	if override.Indent != nil {
		result.Indent = cloneInt(override.Indent)
	}
	if override.Color != nil {
		result.Color = cloneBool(override.Color)
	}
	if override.Prefix != "" {
		result.Prefix = override.Prefix
	}
	if override.SkipCache != nil {
		result.SkipCache = cloneBool(override.SkipCache)
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	return result
}

func (configuration DeployConfiguration) merge(override DeployConfiguration) DeployConfiguration {
	result := configuration
	if override.AwsS3.Bucket != "" {
		result.AwsS3.Bucket = override.AwsS3.Bucket
	}
	if override.AwsS3.SourceDirectory != "" {
		result.AwsS3.SourceDirectory = override.AwsS3.SourceDirectory
	}
	if override.AzureWebApp.AppName != "" {
		result.AzureWebApp.AppName = override.AzureWebApp.AppName
	}
	if override.AzureWebApp.ResourceGroup != "" {
		result.AzureWebApp.ResourceGroup = override.AzureWebApp.ResourceGroup
	}
	if override.AzureWebApp.Location != "" {
		result.AzureWebApp.Location = override.AzureWebApp.Location
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
