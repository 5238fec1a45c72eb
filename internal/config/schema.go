package config

import (
	"fmt"
	"time"
)

// Config is the top-level YAML structure.
type Config struct {
	Social         ProviderConf             `yaml:"social"`
	Chain          ProviderConf             `yaml:"chain"`
	Fetch          FetchConf                `yaml:"fetch"`
	Cache          CacheConf                `yaml:"cache"`
	PostIDPatterns map[string]PostIDPattern `yaml:"post_id_patterns"`
}

// ProviderConf locates one upstream data provider.
type ProviderConf struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Timeout returns the provider's request timeout.
func (p ProviderConf) Timeout() time.Duration {
	return time.Duration(p.TimeoutMs) * time.Millisecond
}

// FetchConf holds tunable fetch limits.
type FetchConf struct {
	TxLimit       int `yaml:"tx_limit"`
	PostListLimit int `yaml:"post_list_limit"`
	PostWorkers   int `yaml:"post_workers"`
}

// CacheConf configures the optional Redis result cache.
// An empty addr disables caching.
type CacheConf struct {
	RedisAddr  string `yaml:"redis_addr"`
	RedisDB    int    `yaml:"redis_db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// Enabled reports whether result caching is configured.
func (c CacheConf) Enabled() bool {
	return c.RedisAddr != ""
}

// TTL returns how long cached results stay valid.
func (c CacheConf) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// PostIDPattern describes the known post-id naming scheme of one profile:
// ids of the form <prefix>-NNN counting from 001.
type PostIDPattern struct {
	Prefix string `yaml:"prefix"`
	Count  int    `yaml:"count"`
}

// PostIDs expands the configured id pattern for a profile into candidate
// post ids. Profiles without a pattern yield nil; the listing endpoint is
// their only fetch path.
func (c *Config) PostIDs(profileID string) []string {
	pat, ok := c.PostIDPatterns[profileID]
	if !ok || pat.Count <= 0 {
		return nil
	}
	ids := make([]string, 0, pat.Count)
	for i := 1; i <= pat.Count; i++ {
		ids = append(ids, fmt.Sprintf("%s-%03d", pat.Prefix, i))
	}
	return ids
}
