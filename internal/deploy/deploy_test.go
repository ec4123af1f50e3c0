package deploy

import (
	"testing"

	"go.uber.org/zap"

	"github.com/temirov/cmdscope/internal/config"
)

func TestAwsS3RequiresBucket(t *testing.T) {
	deployError := AwsS3(config.AwsS3Configuration{}, zap.NewNop())
	if deployError == nil {
		t.Fatal("expected an error without a configured bucket")
	}
}

func TestAzureWebAppRequiresSettings(t *testing.T) {
	testCases := []struct {
		name     string
		settings config.AzureWebAppConfiguration
	}{
		{name: "missing_app_name", settings: config.AzureWebAppConfiguration{ResourceGroup: "group"}},
		{name: "missing_resource_group", settings: config.AzureWebAppConfiguration{AppName: "app"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if deployError := AzureWebApp(testCase.settings, zap.NewNop()); deployError == nil {
				t.Fatal("expected an error for incomplete settings")
			}
		})
	}
}
