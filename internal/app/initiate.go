package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shandysiswandi/gocontact/internal/contact/usecase"
	"github.com/shandysiswandi/gocontact/internal/pkg/clock"
	"github.com/shandysiswandi/gocontact/internal/pkg/config"
	"github.com/shandysiswandi/gocontact/internal/pkg/goroutine"
	"github.com/shandysiswandi/gocontact/internal/pkg/instrument"
	"github.com/shandysiswandi/gocontact/internal/pkg/mail"
	"github.com/shandysiswandi/gocontact/internal/pkg/router"
	"github.com/shandysiswandi/gocontact/internal/pkg/uid"
	"github.com/shandysiswandi/gocontact/internal/pkg/validator"
)

const defaultConfigPath = "./config/config.yaml"

func configDefaults() map[string]any {
	return map[string]any{
		"app.server.http.port":                        3000,
		"app.server.http.max_body_bytes":              router.DefaultMaxBodyBytes,
		"app.server.http.read_header_timeout_seconds": 10,
		"app.server.http.idle_timeout_seconds":        60,
		"app.server.cors":                             "*",
		"app.server.max_goroutine":                    8,

		"mail.driver":                          mail.DriverSMTP,
		"mail.subject_prefix":                  usecase.DefaultSubjectPrefix,
		"mail.verify_on_startup":               true,
		"mail.smtp.host":                       "smtp.gmail.com",
		"mail.smtp.port":                       mail.DefaultSMTPPort,
		"mail.smtp.connection_timeout_seconds": 30,
		"mail.smtp.greeting_timeout_seconds":   30,
		"mail.smtp.socket_timeout_seconds":     60,
		"mail.smtp.tls_skip_verify":            true,
		"mail.resend.timeout_seconds":          30,

		"modules.contact.html_policy": "raw",

		"instrument.enabled":                 false,
		"instrument.service_name":            "gocontact",
		"instrument.log_level":               "info",
		"instrument.log_mask_fields":         "password,api_key,authorization,email_pass",
		"instrument.trace_sample_ratio":      1.0,
		"instrument.metric_interval_seconds": 60,
	}
}

func configEnvAliases() map[string][]string {
	return map[string][]string{
		"app.server.http.port": {"APP_SERVER_HTTP_PORT", "PORT"},
		"mail.smtp.username":   {"MAIL_SMTP_USERNAME", "EMAIL_USER"},
		"mail.smtp.password":   {"MAIL_SMTP_PASSWORD", "EMAIL_PASS"},
		"mail.to":              {"MAIL_TO", "EMAIL_TO"},
		"mail.resend.api_key":  {"MAIL_RESEND_API_KEY", "RESEND_API_KEY"},
	}
}

func (a *App) initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.NewViper(path,
		config.WithDefaults(configDefaults()),
		config.WithEnvAliases(configEnvAliases()),
	)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.config.GetString("instrument.log_level"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

func (a *App) initMail() {
	driver := a.config.GetString("mail.driver")
	client, err := mail.NewFromDriver(driver, mail.FactoryOptions{
		SMTP: mail.SMTPConfig{
			Host:              a.config.GetString("mail.smtp.host"),
			Port:              a.config.GetInt("mail.smtp.port"),
			Username:          a.config.GetString("mail.smtp.username"),
			Password:          a.config.GetString("mail.smtp.password"),
			From:              a.config.GetString("mail.smtp.from"),
			LocalName:         a.config.GetString("mail.smtp.local_name"),
			ConnectionTimeout: a.config.GetSecond("mail.smtp.connection_timeout_seconds"),
			GreetingTimeout:   a.config.GetSecond("mail.smtp.greeting_timeout_seconds"),
			SocketTimeout:     a.config.GetSecond("mail.smtp.socket_timeout_seconds"),
			TLSSkipVerify:     a.config.GetBool("mail.smtp.tls_skip_verify"),
			Clock:             a.clock,
			UUID:              a.uuid,
		},
		Resend: mail.ResendConfig{
			APIKey:  a.config.GetString("mail.resend.api_key"),
			From:    a.config.GetString("mail.resend.from"),
			Timeout: a.config.GetSecond("mail.resend.timeout_seconds"),
			BaseURL: a.config.GetString("mail.resend.base_url"),
		},
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err, "driver", driver)
		os.Exit(1)
	}

	slog.Info("mail transport selected", "driver", client.Name(), "from", client.From())
	a.mail = client
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{router.HeaderCorrelationID},
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              net.JoinHostPort(a.config.GetString("app.server.http.host"), strconv.Itoa(a.config.GetInt("app.server.http.port"))),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []closer{
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
