package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrInvalidForge = errors.New("invalid forge")
	ErrRemoteEmpty  = errors.New("remote cannot be empty")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("issurge configuration not found. Run 'issurge init' to initialize")
)
