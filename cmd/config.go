package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JWTSecret         string
	PaystackBaseURL   string
	PaystackSecretKey string
	RedisAddr         string
	KafkaHost         string
	KafkaPushTopic    string
}
