package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	RedisURL            string
	AdminPassword       string // plaintext fallback, dev only
	AdminPasswordHash   string // bcrypt hash; preferred over AdminPassword when set
	SheetID             string // Google spreadsheet ID holding guests + settings
	ClientEmail         string // service account email
	PrivateKey          string // service account key, may contain literal \n escapes
	GuestSheetName      string
	SettingsSheetName   string
	InviteBaseURL       string // absolute base for invite links and QR data
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	guestSheet := viper.GetString("GOOGLE_SHEET_NAME")
	if guestSheet == "" {
		guestSheet = "Sheet1"
	}
	settingsSheet := viper.GetString("GOOGLE_SETTINGS_SHEET_NAME")
	if settingsSheet == "" {
		settingsSheet = "Settings"
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		RedisURL:            viper.GetString("REDIS_URL"),
		AdminPassword:       viper.GetString("ADMIN_PASSWORD"),
		AdminPasswordHash:   viper.GetString("ADMIN_PASSWORD_HASH"),
		SheetID:             viper.GetString("GOOGLE_SHEET_ID"),
		ClientEmail:         viper.GetString("GOOGLE_CLIENT_EMAIL"),
		PrivateKey:          viper.GetString("GOOGLE_PRIVATE_KEY"),
		GuestSheetName:      guestSheet,
		SettingsSheetName:   settingsSheet,
		InviteBaseURL:       inviteBaseURL(viper.GetString("INVITE_BASE_URL")),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
	}, nil
}

func inviteBaseURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "http://localhost:8080"
	}
	return strings.TrimSuffix(s, "/")
}
