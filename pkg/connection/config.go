package connection

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/logger"
)

type Config struct {
	URL url.URL
	// Endpoint is the full URL requests are posted to.
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logger.Logger
}

// NewConfig creates a new Config for the Cascade instance at u.
// When u carries no path, the standard service path is appended, so both
// "https://cms.example.edu" and
// "https://cms.example.edu/ws/services/AssetOperationService" work.
func NewConfig(u *url.URL) *Config {
	endpoint := *u
	if strings.Trim(endpoint.Path, "/") == "" {
		endpoint.Path = constants.ServicePath
	}
	return &Config{
		URL:      *u,
		Endpoint: endpoint.String(),
		Timeout:  constants.DefaultTimeout * time.Second,
		Logger:   logger.Nop(),
	}
}
