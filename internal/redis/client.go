// Package redis wraps go-redis client construction for the three deployment
// modes the service supports.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

// Mode selects the client topology
type Mode string

// Modes
const (
	ModeStandalone Mode = "standalone"
	ModeCluster    Mode = "cluster"
	ModeFailover   Mode = "failover"
)

// Options configures the client
type Options struct {
	Mode            Mode          `yaml:"mode" env:"MODE"`
	Endpoints       []string      `yaml:"endpoints" env:"ENDPOINTS" envSeparator:","`
	MasterName      string        `yaml:"master_name" env:"MASTER_NAME"`
	Password        string        `yaml:"password" env:"PASSWORD"`
	DB              int           `yaml:"db" env:"DB"`
	PoolSize        int           `yaml:"pool_size" env:"POOL_SIZE"`
	MinIdleConns    int           `yaml:"min_idle_conns" env:"MIN_IDLE_CONNS"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"CONN_MAX_IDLE_TIME"`
	MaxRetries      int           `yaml:"max_retries" env:"MAX_RETRIES"`
	UseTLS          bool          `yaml:"use_tls" env:"USE_TLS"`
}

// Validate checks the options for the chosen mode
func (o *Options) Validate() error {
	vb := errors.NewValidationBuilder()

	mode := o.Mode
	if mode == "" {
		mode = ModeStandalone
	}
	errors.ValidateEnum("redis.mode", string(mode),
		[]string{string(ModeStandalone), string(ModeCluster), string(ModeFailover)}, vb)

	if len(o.Endpoints) == 0 {
		vb.RequiredField("redis.endpoints")
	}
	if mode == ModeFailover && o.MasterName == "" {
		vb.Field("redis.master_name", "is required in failover mode")
	}
	if o.PoolSize < 0 {
		vb.Field("redis.pool_size", "must not be negative")
	}

	return vb.Build()
}

func (o *Options) tlsConfig() *tls.Config {
	if !o.UseTLS {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

// New builds a client for the configured mode. go-redis connects lazily;
// call Ping to fail fast.
func New(opts Options) (Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	switch opts.Mode {
	case ModeCluster:
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           opts.Endpoints,
			Password:        opts.Password,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			ConnMaxIdleTime: opts.ConnMaxIdleTime,
			MaxRetries:      opts.MaxRetries,
			TLSConfig:       opts.tlsConfig(),
		}), nil
	case ModeFailover:
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:      opts.MasterName,
			SentinelAddrs:   opts.Endpoints,
			Password:        opts.Password,
			DB:              opts.DB,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			ConnMaxIdleTime: opts.ConnMaxIdleTime,
			MaxRetries:      opts.MaxRetries,
			TLSConfig:       opts.tlsConfig(),
		}), nil
	default:
		return redis.NewClient(&redis.Options{
			Addr:            opts.Endpoints[0],
			Password:        opts.Password,
			DB:              opts.DB,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			ConnMaxIdleTime: opts.ConnMaxIdleTime,
			MaxRetries:      opts.MaxRetries,
			TLSConfig:       opts.tlsConfig(),
		}), nil
	}
}

// NewClient creates a standalone client for one endpoint
func NewClient(endpoint string) (Client, error) {
	return New(Options{Mode: ModeStandalone, Endpoints: []string{endpoint}})
}

// Ping checks connectivity
func Ping(ctx context.Context, c Client) error {
	if err := c.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
