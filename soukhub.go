package soukhub

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/soukhub/soukhub-go/client"
	"github.com/soukhub/soukhub-go/session"
)

// ClientOptions configures an SDK client. The three timeouts are independent
// and constant for the process lifetime.
type ClientOptions struct {
	BaseURL        string        `yaml:"baseURL" json:"baseURL" short:"u" long:"url" description:"platform base URL"`
	ConnectTimeout time.Duration `yaml:"connectTimeout,omitempty" json:"connectTimeout,omitempty" long:"connect-timeout" description:"dial and TLS handshake timeout"`
	ReadTimeout    time.Duration `yaml:"readTimeout,omitempty" json:"readTimeout,omitempty" long:"read-timeout" description:"response header timeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout,omitempty" json:"writeTimeout,omitempty" long:"write-timeout" description:"whole request timeout"`
	SessionURL     string        `yaml:"sessionURL,omitempty" json:"sessionURL,omitempty" short:"s" long:"session" description:"session snapshot location (afs URL or path); empty keeps the session in memory"`

	// Store, when set, overrides SessionURL with a caller-provided session
	// store (e.g. a per-test in-memory store).
	Store session.Store `yaml:"-" json:"-"`

	// Logger defaults to zerolog.Nop().
	Logger *zerolog.Logger `yaml:"-" json:"-"`
}

// Init fills defaults.
func (o *ClientOptions) Init() {
	if o.ConnectTimeout == 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = 30 * time.Second
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = 60 * time.Second
	}
}

// DefaultSessionURL is where the CLI persists the session when no explicit
// location is configured.
func DefaultSessionURL() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".soukhub", "session.json")
}

// New assembles a fully configured SDK client: session store, authorizing
// transport and typed API surface.
func New(options *ClientOptions) (*client.Client, error) {
	options.Init()
	store := options.Store
	if store == nil {
		if options.SessionURL != "" {
			store = session.NewFileStore(options.SessionURL)
		} else {
			store = session.NewMemoryStore()
		}
	}
	clientOptions := []client.Option{
		client.WithTimeouts(client.Timeouts{
			Connect: options.ConnectTimeout,
			Read:    options.ReadTimeout,
			Write:   options.WriteTimeout,
		}),
	}
	if options.Logger != nil {
		clientOptions = append(clientOptions, client.WithLogger(*options.Logger))
	}
	return client.New(options.BaseURL, store, clientOptions...)
}
