// Package deploy shells out to the cloud provider CLIs for the two supported
// deploy targets. The wrappers are deliberately thin: settings come from
// configuration, and the underlying tool's output streams pass through.
package deploy

import (
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/temirov/cmdscope/internal/config"
)

const (
	awsBinaryName             = "aws"
	azureBinaryName           = "az"
	defaultSourceDirectory    = "./dist"
	missingBucketMessage      = "deploy aws-s3 requires deploy.aws_s3.bucket in configuration"
	missingAppNameMessage     = "deploy azure-web-app requires deploy.azure_web_app.app_name in configuration"
	missingGroupMessage       = "deploy azure-web-app requires deploy.azure_web_app.resource_group in configuration"
	deployFailureFormat       = "deploy target %s failed: %w"
	s3DestinationFormat       = "s3://%s"
	awsS3StartedMessage       = "syncing to S3 bucket"
	azureWebAppStartedMessage = "deploying Azure web app"
)

// AwsS3 synchronizes the configured source directory to the configured bucket
// via `aws s3 sync`.
func AwsS3(settings config.AwsS3Configuration, logger *zap.Logger) error {
	if settings.Bucket == "" {
		return fmt.Errorf(missingBucketMessage)
	}
	sourceDirectory := settings.SourceDirectory
	if sourceDirectory == "" {
		sourceDirectory = defaultSourceDirectory
	}
	logger.Info(awsS3StartedMessage, zap.String("bucket", settings.Bucket), zap.String("source", sourceDirectory))
	return runDeployCommand("aws-s3", awsBinaryName, "s3", "sync", sourceDirectory, fmt.Sprintf(s3DestinationFormat, settings.Bucket))
}

// AzureWebApp deploys the working directory to the configured web app via
// `az webapp up`.
func AzureWebApp(settings config.AzureWebAppConfiguration, logger *zap.Logger) error {
	if settings.AppName == "" {
		return fmt.Errorf(missingAppNameMessage)
	}
	if settings.ResourceGroup == "" {
		return fmt.Errorf(missingGroupMessage)
	}
	logger.Info(azureWebAppStartedMessage, zap.String("app", settings.AppName), zap.String("resourceGroup", settings.ResourceGroup))
	deployArguments := []string{"webapp", "up", "--name", settings.AppName, "--resource-group", settings.ResourceGroup}
	if settings.Location != "" {
		deployArguments = append(deployArguments, "--location", settings.Location)
	}
	return runDeployCommand("azure-web-app", azureBinaryName, deployArguments...)
}

func runDeployCommand(targetName string, binaryName string, commandArguments ...string) error {
	// #nosec G204
	deployCommand := exec.Command(binaryName, commandArguments...)
	deployCommand.Stdout = os.Stdout
	deployCommand.Stderr = os.Stderr
	if runError := deployCommand.Run(); runError != nil {
		return fmt.Errorf(deployFailureFormat, targetName, runError)
	}
	return nil
}
