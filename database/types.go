/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomoncle/smartenum/utils"
)

// ConnectionConfig describes how to connect to a database and tune its pool.
type ConnectionConfig struct {
	Type            string        `yaml:"type" json:"type"` // postgres、mysql、sqlite
	Host            string        `yaml:"host" json:"host"`
	Port            int           `yaml:"port" json:"port"`
	Username        string        `yaml:"username" json:"username"`
	Password        string        `yaml:"password" json:"password"`
	DBName          string        `yaml:"dbname" json:"dbname"`
	SSLMode         string        `yaml:"sslmode" json:"sslmode"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" json:"connect_timeout"`
	EnableQueryLog  bool          `yaml:"enable_query_log" json:"enable_query_log"`
	SlowQueryTime   time.Duration `yaml:"slow_query_time" json:"slow_query_time"`
}

// LookupConfig controls how lookup tables are kept in line with the code.
type LookupConfig struct {
	SyncOnStartup bool `yaml:"sync_on_startup" json:"sync_on_startup"`
	// Prune deletes rows whose value is no longer declared.
	Prune bool `yaml:"prune" json:"prune"`
}

// Config aggregates connection and lookup table settings.
type Config struct {
	Connection ConnectionConfig `yaml:"connection" json:"connection"`
	Lookup     LookupConfig     `yaml:"lookup" json:"lookup"`
}

// DefaultConnectionConfig returns a connection config with sensible defaults.
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Hour,
		ConnectTimeout:  time.Second * 10,
		SlowQueryTime:   time.Second * 2,
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults and then
// applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{Connection: *DefaultConnectionConfig()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Connection.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides configuration values from environment variables.
// Unset or unparsable variables keep the current value.
func (c *ConnectionConfig) ApplyEnv() {
	c.Type = utils.EnvDefaultString("DB_TYPE", c.Type)
	c.Host = utils.EnvDefaultString("DB_HOST", c.Host)
	c.Port = utils.EnvDefaultInt("DB_PORT", c.Port)
	c.Username = utils.EnvDefaultString("DB_USERNAME", c.Username)
	c.Password = utils.EnvDefaultString("DB_PASSWORD", c.Password)
	c.DBName = utils.EnvDefaultString("DB_NAME", c.DBName)
	c.SSLMode = utils.EnvDefaultString("DB_SSLMODE", c.SSLMode)
	c.MaxOpenConns = utils.EnvDefaultInt("DB_MAX_OPEN_CONNS", c.MaxOpenConns)
	c.EnableQueryLog = utils.EnvDefaultBool("DB_ENABLE_QUERY_LOG", c.EnableQueryLog)
}
