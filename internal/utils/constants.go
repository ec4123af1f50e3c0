package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// ErrorLogFormat defines the formatting string for error log messages.
const ErrorLogFormat = "Error: %v"

// GlobalConfigDirectoryName is the per-user configuration directory under the home directory.
const GlobalConfigDirectoryName = ".cmdscope"

// ConfigFileName is the configuration file name used both globally and locally.
const ConfigFileName = ".cmdscope.yaml"

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %v"

// ApplicationExecutionFailedMessage reports a fatal application error.
const ApplicationExecutionFailedMessage = "application execution failed"
