package bookingservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учет исходящих вызовов
type MetricsRecorder interface {
	ObserveIntegration(target, operation, result string, elapsed time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveIntegration(string, string, string, time.Duration) {}
