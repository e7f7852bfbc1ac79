package env

const (
	// Prefix is the ENV variable prefix for the service
	Prefix = "CANTONBOT"

	// TokenSuffix is the ENV variable suffix for the Telegram bot token
	TokenSuffix = "_TOKEN"

	// DBURLSuffix is the ENV variable suffix for the DB connection URL
	DBURLSuffix = "_DB_URL"
)
