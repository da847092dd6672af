package types

import "go.uber.org/zap"

// Logger represents a named sugared logger
type Logger struct {
	*zap.SugaredLogger
	Name string
}
