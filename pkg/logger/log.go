package logger

import "go.uber.org/zap"

// NewLogger builds the application logger. Console encoding so the
// output stays readable when tailing the service by hand.
func NewLogger() *zap.Logger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}
