package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"anonymous-voting-system"`
	URL     string `env:"LOKI_URL"`
}
