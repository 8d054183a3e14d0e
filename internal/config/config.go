package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr            string        `default:":8080" envconfig:"ADDR"`
	UpstreamURL     string        `default:"http://localhost:5000/lab/frontend/api" envconfig:"UPSTREAM_URL"`
	UpstreamTimeout time.Duration `default:"10s" envconfig:"UPSTREAM_TIMEOUT"`
	DBDSN           string        `default:"foodcart.db" envconfig:"DB_DSN"`
	PageSize        int           `default:"5" envconfig:"PAGE_SIZE"`
	Prod            bool          `default:"false" envconfig:"PROD"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("FOODCART", &c); err != nil {
		return Config{}, err
	}
	log.Printf("[config] ADDR=%s UPSTREAM_URL=%s DB_DSN=%s PAGE_SIZE=%d", c.Addr, c.UpstreamURL, c.DBDSN, c.PageSize)
	return c, nil
}
