package config

import (
	"time"

	"github.com/spf13/viper"
)

// Razorpay holds the gateway credentials. KeyID is public (the checkout UI
// needs it), KeySecret signs client-side verify claims, WebhookSecret signs
// webhook bodies and falls back to KeySecret when unset.
type Razorpay struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

func (r Razorpay) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

// WebhookSecretOrFallback returns the secret webhook signatures are checked
// against.
func (r Razorpay) WebhookSecretOrFallback() string {
	if r.WebhookSecret != "" {
		return r.WebhookSecret
	}
	return r.KeySecret
}

// Supabase is the identity-provider endpoint used for token introspection.
type Supabase struct {
	URL     string
	AnonKey string
}

func (s Supabase) Configured() bool {
	return s.URL != "" && s.AnonKey != ""
}

type Config struct {
	Port          string
	AllowedOrigin string

	Razorpay Razorpay
	Supabase Supabase

	GatewayTimeout time.Duration
	StoreTimeout   time.Duration
}

// Load reads configuration from the environment. Missing credentials do not
// fail here: handlers consult Configured() and answer with a typed error, so
// a partially configured process still boots and serves what it can.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "5000")
	v.SetDefault("ALLOWED_ORIGIN", "http://localhost:8080")
	v.SetDefault("GATEWAY_TIMEOUT_MS", 10000)
	v.SetDefault("STORE_TIMEOUT_MS", 5000)

	return &Config{
		Port:          v.GetString("PORT"),
		AllowedOrigin: v.GetString("ALLOWED_ORIGIN"),
		Razorpay: Razorpay{
			KeyID:         v.GetString("RAZORPAY_KEY_ID"),
			KeySecret:     v.GetString("RAZORPAY_KEY_SECRET"),
			WebhookSecret: v.GetString("RAZORPAY_WEBHOOK_SECRET"),
		},
		Supabase: Supabase{
			URL:     v.GetString("SUPABASE_URL"),
			AnonKey: v.GetString("SUPABASE_ANON_KEY"),
		},
		GatewayTimeout: time.Duration(v.GetInt("GATEWAY_TIMEOUT_MS")) * time.Millisecond,
		StoreTimeout:   time.Duration(v.GetInt("STORE_TIMEOUT_MS")) * time.Millisecond,
	}
}
