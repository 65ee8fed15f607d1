package configs

type Audit struct {
	Schedule string `env:"AUDIT_CRON_SCHEDULE" envDefault:"0 3 * * *"`
}
