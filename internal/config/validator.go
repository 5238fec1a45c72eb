package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the config for:
//   - Parseable upstream base URLs
//   - Positive fetch limits
//   - Well-formed post-id patterns
func Validate(cfg *Config) error {
	var errs []string

	for name, p := range map[string]ProviderConf{"social": cfg.Social, "chain": cfg.Chain} {
		if p.BaseURL == "" {
			errs = append(errs, fmt.Sprintf("%s: base_url is required", name))
			continue
		}
		if u, err := url.Parse(p.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s: base_url %q is not an absolute URL", name, p.BaseURL))
		}
		if p.TimeoutMs < 0 {
			errs = append(errs, fmt.Sprintf("%s: timeout_ms must not be negative", name))
		}
	}

	if cfg.Fetch.TxLimit <= 0 {
		errs = append(errs, "fetch: tx_limit must be positive")
	}
	if cfg.Fetch.PostListLimit <= 0 {
		errs = append(errs, "fetch: post_list_limit must be positive")
	}
	if cfg.Fetch.PostWorkers <= 0 {
		errs = append(errs, "fetch: post_workers must be positive")
	}
	if cfg.Cache.TTLSeconds < 0 {
		errs = append(errs, "cache: ttl_seconds must not be negative")
	}

	for profile, pat := range cfg.PostIDPatterns {
		if pat.Count > 0 && pat.Prefix == "" {
			errs = append(errs, fmt.Sprintf("post_id_patterns.%s: prefix is required", profile))
		}
		if pat.Count < 0 {
			errs = append(errs, fmt.Sprintf("post_id_patterns.%s: count must not be negative", profile))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
