package config

// Log prefixes shared by the service and the CLI.
const (
	LogInfo  = "[APP] [INFO]"
	LogError = "[APP] [ERROR]"
)

// Color constants for terminal output.
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)
