package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Web.Enabled {
		if err := c.Auth.validate(); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
		if c.Web.Port <= 0 || c.Web.Port > 65535 {
			return fmt.Errorf("web.port must be in 1..65535 (got %d)", c.Web.Port)
		}
	}

	if err := c.Soundboard.validate(); err != nil {
		return fmt.Errorf("soundboard: %w", err)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.ClientID == "" || a.ClientSecret == "" || a.RedirectURI == "" {
		return fmt.Errorf("client_id, client_secret and redirect_uri are required when the web panel is enabled")
	}
	if len(a.SessionSecret) < 32 {
		return fmt.Errorf("session_secret must be at least 32 characters (got %d)", len(a.SessionSecret))
	}
	if a.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", a.SessionTTL)
	}
	return nil
}

func (s *SoundboardConfig) validate() error {
	if s.MinInterval <= 0 {
		return fmt.Errorf("min_interval must be > 0 (got %d)", s.MinInterval)
	}
	if s.MaxInterval < s.MinInterval {
		return fmt.Errorf("max_interval (%d) must be >= min_interval (%d)", s.MaxInterval, s.MinInterval)
	}
	if s.DefaultInterval < s.MinInterval || s.DefaultInterval > s.MaxInterval {
		return fmt.Errorf("interval must be in %d..%d (got %d)", s.MinInterval, s.MaxInterval, s.DefaultInterval)
	}
	if s.DefaultVolume < 0 || s.DefaultVolume > 100 {
		return fmt.Errorf("volume must be in 0..100 (got %d)", s.DefaultVolume)
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be > 0 (got %v)", s.PollInterval)
	}
	if s.MaxPlayback <= 0 {
		return fmt.Errorf("max_playback must be > 0 (got %v)", s.MaxPlayback)
	}
	if s.ActivityRetentionDays <= 0 {
		return fmt.Errorf("activity_retention_days must be > 0 (got %d)", s.ActivityRetentionDays)
	}
	return nil
}
