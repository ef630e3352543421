package common

import (
	"dishmate/internal/infra/config"
	"dishmate/internal/infra/logging"
)

type contextKey string

const ContextKeyApp contextKey = "appctx"

type GlobalOptions struct {
	Debug bool
	JSON  bool
	NoLog bool
}

type AppContext struct {
	Options GlobalOptions
	Profile config.Profile
	Logger  logging.Logger
}
