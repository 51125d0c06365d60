package wxchart

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"endobit.io/app/log"
)

// mqttLogger adapts a slog.Logger to the paho logging interface.
type mqttLogger struct {
	logger *slog.Logger
	level  slog.Level
}

func (l mqttLogger) Printf(format string, v ...any) {
	l.logger.Log(context.TODO(), l.level, strings.Trim(fmt.Sprintf(format, v...), "[]"))
}

func (l mqttLogger) Println(v ...any) {
	var attrs []any

	if len(v) > 1 {
		attrs = append(attrs, "component", strings.Trim(strings.TrimSpace(fmt.Sprint(v[0])), "[]"))
		v = v[1:]
	}

	l.logger.Log(context.TODO(), l.level, strings.Trim(fmt.Sprint(v...), "[]"), attrs...)
}

// SetMQTTLogger routes the MQTT client library logs to logger. Library debug
// messages are logged at trace level.
func SetMQTTLogger(logger *slog.Logger) {
	mqtt.ERROR = mqttLogger{logger: logger, level: slog.LevelError}
	mqtt.CRITICAL = mqttLogger{logger: logger, level: slog.LevelError}
	mqtt.WARN = mqttLogger{logger: logger, level: slog.LevelWarn}
	mqtt.DEBUG = mqttLogger{logger: logger, level: log.LevelTrace}
}
