package config

import "go.uber.org/zap"

// NewLogger builds the process logger. Development mode gets the human-readable
// console encoder and debug level.
func NewLogger(env Environment) (*zap.Logger, error) {
	if env.IsDevelopment {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
