package logger

import (
	"go.uber.org/zap"
)

var (
	zapLogger *zap.Logger
	sugar     *zap.SugaredLogger
)

func init() {
	zapLogger, _ = zap.NewProduction(zap.AddCaller(), zap.AddCallerSkip(1))
	sugar = zapLogger.Sugar()
}

// Zap exposes the underlying logger for middleware that takes it directly.
func Zap() *zap.Logger {
	return zapLogger
}

// With returns a sugared logger carrying the given key-value context.
func With(args ...interface{}) *zap.SugaredLogger {
	return sugar.With(args...)
}

func Debug(msg string, fields ...zap.Field) {
	zapLogger.Debug(msg, fields...)
}

func Debugf(template string, args ...interface{}) {
	sugar.Debugf(template, args...)
}

func Info(msg string, fields ...zap.Field) {
	zapLogger.Info(msg, fields...)
}

func Infof(template string, args ...interface{}) {
	sugar.Infof(template, args...)
}

func Warn(msg string, fields ...zap.Field) {
	zapLogger.Warn(msg, fields...)
}

func Warnf(template string, args ...interface{}) {
	sugar.Warnf(template, args...)
}

func Error(msg string, fields ...zap.Field) {
	zapLogger.Error(msg, fields...)
}

func Errorf(template string, args ...interface{}) {
	sugar.Errorf(template, args...)
}
