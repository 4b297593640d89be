// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and the environment, validated, and handed to the
// logger and job manager constructors. Defaults size a manager for eight lanes.
package config
