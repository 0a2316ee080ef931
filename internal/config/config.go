package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	SessionSecret string // cookieセッションの署名キー

	MailMode     string        // smtp / eco（ecoは送信しない）
	SMTPHost     string        // SMTPホスト
	SMTPPort     int           // SMTPポート（587）
	SMTPUser     string        // SMTP認証ユーザー
	SMTPPassword string        // SMTP認証パスワード
	MailFrom     string        // 差出人アドレス
	MailTimeout  time.Duration // 確認メール送信の上限時間

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		MailMode:     getenv("MAIL_MODE", "eco"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	smtpPort, err := atoiDefault("SMTP_PORT", 587)
	if err != nil {
		return Config{}, err
	}
	cfg.SMTPPort = smtpPort

	timeoutMS, err := atoiDefault("MAIL_TIMEOUT_MS", 5000)
	if err != nil {
		return Config{}, err
	}
	cfg.MailTimeout = time.Duration(timeoutMS) * time.Millisecond

	//必須チェック
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}
	switch cfg.MailMode {
	case "eco":
		//送信なし。SMTP設定は不要。
	case "smtp":
		if cfg.SMTPHost == "" {
			return Config{}, fmt.Errorf("SMTP_HOST is required when MAIL_MODE=smtp")
		}
		if cfg.MailFrom == "" {
			return Config{}, fmt.Errorf("MAIL_FROM is required when MAIL_MODE=smtp")
		}
	default:
		return Config{}, fmt.Errorf("MAIL_MODE must be smtp or eco")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
