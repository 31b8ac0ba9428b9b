package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEnvFile      = ".env"
	defaultSiteFile     = "carta.yaml"
	defaultPort         = "8080"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultDataDir      = "./menu"
	defaultCurrency     = "ARS"
	defaultPopularSize  = 6
	defaultLikesBackend = BackendLocal
	defaultLocalPath    = "./likes.json"
	defaultCollection   = "likes"
	defaultPrimaryLang  = "es"
	defaultSecondary    = "en"
)

// Counter store backends selectable at deployment time. The two are alternate
// strategies, never layered or reconciled.
const (
	BackendLocal     = "local"
	BackendFirestore = "firestore"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Menu      MenuConfig
	Likes     LikesConfig
	Firestore FirestoreConfig
	Locale    LocaleConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// MenuConfig points at the menu documents and display parameters.
type MenuConfig struct {
	DataDir     string
	DataURL     string
	Currency    string
	PopularSize int
}

// LikesConfig selects the counter store backend.
type LikesConfig struct {
	Backend   string
	LocalPath string
}

// FirestoreConfig stores database parameters for the remote backend.
type FirestoreConfig struct {
	ProjectID    string
	EmulatorHost string
	Collection   string
}

// LocaleConfig names the two supported menu languages.
type LocaleConfig struct {
	Primary   string
	Secondary string
}

// Languages returns the supported languages in preference order.
func (l LocaleConfig) Languages() []string {
	return []string{l.Primary, l.Secondary}
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile  string
	siteFile string
	envMap   map[string]string
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithSiteFile overrides the carta.yaml site file path.
func WithSiteFile(path string) Option {
	return func(o *loaderOptions) { o.siteFile = path }
}

// WithEnvMap injects explicit values taking precedence over files and OS env.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) { o.envMap = values }
}

// siteFile mirrors Config with yaml tags; zero values mean "not set".
type siteFile struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Menu struct {
		DataDir     string `yaml:"data_dir"`
		DataURL     string `yaml:"data_url"`
		Currency    string `yaml:"currency"`
		PopularSize int    `yaml:"popular_size"`
	} `yaml:"menu"`
	Likes struct {
		Backend   string `yaml:"backend"`
		LocalPath string `yaml:"local_path"`
	} `yaml:"likes"`
	Firestore struct {
		ProjectID    string `yaml:"project_id"`
		EmulatorHost string `yaml:"emulator_host"`
		Collection   string `yaml:"collection"`
	} `yaml:"firestore"`
	Locale struct {
		Primary   string `yaml:"primary"`
		Secondary string `yaml:"secondary"`
	} `yaml:"locale"`
}

// Load builds the configuration. Precedence: defaults < carta.yaml < .env < OS
// env < explicit env map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:  defaultEnvFile,
		siteFile: strings.TrimSpace(os.Getenv("CARTA_SITE_FILE")),
	}
	if options.siteFile == "" {
		options.siteFile = defaultSiteFile
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         defaultPort,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		Menu: MenuConfig{
			DataDir:     defaultDataDir,
			Currency:    defaultCurrency,
			PopularSize: defaultPopularSize,
		},
		Likes: LikesConfig{
			Backend:   defaultLikesBackend,
			LocalPath: defaultLocalPath,
		},
		Firestore: FirestoreConfig{
			Collection: defaultCollection,
		},
		Locale: LocaleConfig{
			Primary:   defaultPrimaryLang,
			Secondary: defaultSecondary,
		},
	}

	if err := applySiteFile(&cfg, options.siteFile); err != nil {
		return Config{}, err
	}

	// .env is a local convenience; a missing file is not an error.
	if options.envFile != "" {
		_ = godotenv.Load(options.envFile)
	}

	lookup := func(key string) string {
		if options.envMap != nil {
			if v, ok := options.envMap[key]; ok {
				return strings.TrimSpace(v)
			}
		}
		return strings.TrimSpace(os.Getenv(key))
	}

	applyEnv(&cfg, lookup)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applySiteFile(cfg *Config, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read site file %s: %w", path, err)
	}
	var site siteFile
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return fmt.Errorf("config: parse site file %s: %w", path, err)
	}

	setString(&cfg.Server.Port, site.Server.Port)
	setString(&cfg.Menu.DataDir, site.Menu.DataDir)
	setString(&cfg.Menu.DataURL, site.Menu.DataURL)
	setString(&cfg.Menu.Currency, site.Menu.Currency)
	if site.Menu.PopularSize > 0 {
		cfg.Menu.PopularSize = site.Menu.PopularSize
	}
	setString(&cfg.Likes.Backend, site.Likes.Backend)
	setString(&cfg.Likes.LocalPath, site.Likes.LocalPath)
	setString(&cfg.Firestore.ProjectID, site.Firestore.ProjectID)
	setString(&cfg.Firestore.EmulatorHost, site.Firestore.EmulatorHost)
	setString(&cfg.Firestore.Collection, site.Firestore.Collection)
	setString(&cfg.Locale.Primary, site.Locale.Primary)
	setString(&cfg.Locale.Secondary, site.Locale.Secondary)
	return nil
}

func applyEnv(cfg *Config, lookup func(string) string) {
	setString(&cfg.Server.Port, lookup("CARTA_PORT"))
	setDuration(&cfg.Server.ReadTimeout, lookup("CARTA_READ_TIMEOUT"))
	setDuration(&cfg.Server.WriteTimeout, lookup("CARTA_WRITE_TIMEOUT"))
	setDuration(&cfg.Server.IdleTimeout, lookup("CARTA_IDLE_TIMEOUT"))

	setString(&cfg.Menu.DataDir, lookup("CARTA_MENU_DIR"))
	setString(&cfg.Menu.DataURL, lookup("CARTA_MENU_URL"))
	setString(&cfg.Menu.Currency, lookup("CARTA_CURRENCY"))
	setInt(&cfg.Menu.PopularSize, lookup("CARTA_POPULAR_SIZE"))

	setString(&cfg.Likes.Backend, lookup("CARTA_LIKES_BACKEND"))
	setString(&cfg.Likes.LocalPath, lookup("CARTA_LIKES_PATH"))

	setString(&cfg.Firestore.ProjectID, lookup("CARTA_FIRESTORE_PROJECT"))
	setString(&cfg.Firestore.EmulatorHost, lookup("FIRESTORE_EMULATOR_HOST"))
	setString(&cfg.Firestore.Collection, lookup("CARTA_FIRESTORE_COLLECTION"))

	setString(&cfg.Locale.Primary, lookup("CARTA_LANG_PRIMARY"))
	setString(&cfg.Locale.Secondary, lookup("CARTA_LANG_SECONDARY"))
}

func validate(cfg Config) error {
	var bad []string
	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		bad = append(bad, "server.port")
	}
	if cfg.Menu.DataDir == "" && cfg.Menu.DataURL == "" {
		bad = append(bad, "menu.data_dir")
	}
	if cfg.Menu.PopularSize <= 0 {
		bad = append(bad, "menu.popular_size")
	}
	switch cfg.Likes.Backend {
	case BackendLocal:
		if cfg.Likes.LocalPath == "" {
			bad = append(bad, "likes.local_path")
		}
	case BackendFirestore:
		if cfg.Firestore.ProjectID == "" && cfg.Firestore.EmulatorHost == "" {
			bad = append(bad, "firestore.project_id")
		}
	default:
		bad = append(bad, "likes.backend")
	}
	if cfg.Locale.Primary == "" || cfg.Locale.Secondary == "" || cfg.Locale.Primary == cfg.Locale.Secondary {
		bad = append(bad, "locale")
	}
	if len(bad) > 0 {
		return &ValidationError{fields: bad}
	}
	return nil
}

func setString(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = strings.TrimSpace(value)
	}
}

func setInt(dst *int, value string) {
	if value == "" {
		return
	}
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
		*dst = parsed
	}
}

func setDuration(dst *time.Duration, value string) {
	if value == "" {
		return
	}
	if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
		*dst = parsed
	}
}
