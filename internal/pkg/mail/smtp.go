package mail

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	netmail "net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/gocontact/internal/pkg/clock"
	"github.com/shandysiswandi/gocontact/internal/pkg/uid"
)

const (
	// DefaultSMTPPort is the submission port used with STARTTLS.
	DefaultSMTPPort = 587

	defaultConnectionTimeout = 30 * time.Second
	defaultGreetingTimeout   = 30 * time.Second
	defaultSocketTimeout     = 60 * time.Second
)

const (
	phaseConnect  = "connect"
	phaseGreeting = "greeting"
	phaseTLS      = "starttls"
	phaseAuth     = "auth"
	phaseData     = "data"
)

// SMTP is a Mail implementation backed by net/smtp.
//
// Every Send opens its own connection, so a single SMTP value is safe for
// concurrent use.
type SMTP struct {
	host        string
	addr        string
	localName   string
	username    string
	password    string
	defaultFrom string

	connectionTimeout time.Duration
	greetingTimeout   time.Duration
	socketTimeout     time.Duration
	tlsSkipVerify     bool

	clock clock.Clocker
	uuid  uid.StringID
}

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP submission port; defaults to 587.
	Port int
	// Username is the SMTP authentication username.
	Username string
	// Password is the SMTP authentication secret (an app password when the
	// account has multi-factor authentication).
	Password string
	// From is the default sender when Message.From is empty; defaults to Username.
	From string
	// LocalName is the name sent with EHLO; defaults to "localhost".
	LocalName string
	// ConnectionTimeout bounds establishing the TCP connection.
	ConnectionTimeout time.Duration
	// GreetingTimeout bounds the banner, EHLO, STARTTLS and AUTH exchange.
	GreetingTimeout time.Duration
	// SocketTimeout bounds the envelope and data transfer.
	SocketTimeout time.Duration
	// TLSSkipVerify disables certificate verification after STARTTLS.
	TLSSkipVerify bool
	// Clock stamps the Date header; defaults to the system clock.
	Clock clock.Clocker
	// UUID generates Message-ID local parts; defaults to UUIDv7.
	UUID uid.StringID
}

// NewSMTP constructs an SMTP mail sender.
//
// It never fails: missing host or credentials surface as ErrConfigMissing on
// Send and Verify so the process can still boot and answer health checks.
func NewSMTP(cfg SMTPConfig) *SMTP {
	if cfg.Port == 0 {
		cfg.Port = DefaultSMTPPort
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.LocalName == "" {
		cfg.LocalName = "localhost"
	}
	if cfg.ConnectionTimeout <= 0 {
		cfg.ConnectionTimeout = defaultConnectionTimeout
	}
	if cfg.GreetingTimeout <= 0 {
		cfg.GreetingTimeout = defaultGreetingTimeout
	}
	if cfg.SocketTimeout <= 0 {
		cfg.SocketTimeout = defaultSocketTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.UUID == nil {
		cfg.UUID = uid.NewUUID()
	}

	return &SMTP{
		host:              cfg.Host,
		addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		localName:         cfg.LocalName,
		username:          cfg.Username,
		password:          cfg.Password,
		defaultFrom:       cfg.From,
		connectionTimeout: cfg.ConnectionTimeout,
		greetingTimeout:   cfg.GreetingTimeout,
		socketTimeout:     cfg.SocketTimeout,
		tlsSkipVerify:     cfg.TLSSkipVerify,
		clock:             cfg.Clock,
		uuid:              cfg.UUID,
	}
}

// Name implements Mail.
func (s *SMTP) Name() string {
	return DriverSMTP
}

// From implements Mail.
func (s *SMTP) From() string {
	return s.defaultFrom
}

// Send delivers a message over SMTP and returns the generated Message-ID.
func (s *SMTP) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classifySMTP(phaseConnect, err)
	}

	if err := s.checkConfig(); err != nil {
		return "", err
	}

	if len(msg.To) == 0 {
		return "", fmt.Errorf("%w: no recipients provided", ErrConfigMissing)
	}

	from := msg.From
	if from == "" {
		from = s.defaultFrom
	}
	if from == "" {
		return "", fmt.Errorf("%w: no sender provided", ErrConfigMissing)
	}

	messageID := s.messageID(from)
	raw := s.buildRaw(msg, from, messageID)

	c, conn, stop, err := s.open(ctx)
	if err != nil {
		return "", err
	}
	defer stop()
	//nolint:errcheck // Close after Quit reports an already closed connection
	defer c.Close()

	if err := conn.SetDeadline(time.Now().Add(s.socketTimeout)); err != nil {
		return "", classifySMTP(phaseData, err)
	}

	if err := c.Mail(envelopeAddress(from)); err != nil {
		return "", classifySMTP(phaseData, err)
	}
	for _, rcpt := range msg.To {
		if err := c.Rcpt(envelopeAddress(rcpt)); err != nil {
			return "", classifySMTP(phaseData, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return "", classifySMTP(phaseData, err)
	}
	if _, err := w.Write(raw); err != nil {
		return "", classifySMTP(phaseData, err)
	}
	if err := w.Close(); err != nil {
		return "", classifySMTP(phaseData, err)
	}

	if err := c.Quit(); err != nil {
		return "", classifySMTP(phaseData, err)
	}

	return messageID, nil
}

// Verify connects, upgrades to TLS and authenticates, then quits.
func (s *SMTP) Verify(ctx context.Context) error {
	if err := s.checkConfig(); err != nil {
		return err
	}

	c, conn, stop, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer stop()
	//nolint:errcheck // Close after Quit reports an already closed connection
	defer c.Close()

	if err := conn.SetDeadline(time.Now().Add(s.socketTimeout)); err != nil {
		return classifySMTP(phaseData, err)
	}

	return classifySMTP(phaseData, c.Quit())
}

// Close implements io.Closer for interface compatibility.
func (s *SMTP) Close() error {
	return nil
}

func (s *SMTP) checkConfig() error {
	var missing []string
	if s.host == "" {
		missing = append(missing, "host")
	}
	if s.username == "" {
		missing = append(missing, "username")
	}
	if s.password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: smtp %s not set", ErrConfigMissing, strings.Join(missing, ", "))
	}
	return nil
}

// open dials, reads the banner, upgrades with STARTTLS and authenticates.
// The returned stop func detaches the context watcher and must be called.
func (s *SMTP) open(ctx context.Context) (*smtp.Client, net.Conn, func() bool, error) {
	dialer := &net.Dialer{Timeout: s.connectionTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return nil, nil, nil, classifySMTP(phaseConnect, err)
	}

	// Unblock any pending read or write once the caller gives up.
	stop := context.AfterFunc(ctx, func() {
		//nolint:errcheck // best effort
		conn.SetDeadline(time.Now())
	})

	fail := func(phase string, err error) (*smtp.Client, net.Conn, func() bool, error) {
		stop()
		//nolint:errcheck // already failing
		conn.Close()
		return nil, nil, nil, classifySMTP(phase, err)
	}

	if err := conn.SetDeadline(time.Now().Add(s.greetingTimeout)); err != nil {
		return fail(phaseGreeting, err)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fail(phaseGreeting, err)
	}

	if err := c.Hello(s.localName); err != nil {
		return fail(phaseGreeting, err)
	}

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return fail(phaseTLS, fmt.Errorf("%w: server %s does not offer STARTTLS", ErrRejected, s.host))
	}

	//nolint:gosec // verification is only skipped when explicitly configured
	tlsConfig := &tls.Config{
		ServerName:         s.host,
		InsecureSkipVerify: s.tlsSkipVerify,
		MinVersion:         tls.VersionTLS12,
	}
	if err := c.StartTLS(tlsConfig); err != nil {
		return fail(phaseTLS, err)
	}

	if ok, _ := c.Extension("AUTH"); !ok {
		return fail(phaseAuth, fmt.Errorf("%w: server %s does not offer AUTH", ErrRejected, s.host))
	}

	if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return fail(phaseAuth, err)
	}

	return c, conn, stop, nil
}

func (s *SMTP) messageID(from string) string {
	domain := s.host
	if addr, err := netmail.ParseAddress(from); err == nil {
		if _, d, ok := strings.Cut(addr.Address, "@"); ok && d != "" {
			domain = d
		}
	}
	if domain == "" {
		domain = s.localName
	}
	return fmt.Sprintf("<%s@%s>", s.uuid.Generate(), domain)
}

func (s *SMTP) buildRaw(msg Message, from, messageID string) []byte {
	body, contentType, encoding := buildBody(msg)

	var headers []string
	headers = append(headers, fmt.Sprintf("From: %s", from))
	headers = append(headers, fmt.Sprintf("To: %s", strings.Join(msg.To, ", ")))
	if msg.ReplyTo != "" {
		headers = append(headers, fmt.Sprintf("Reply-To: %s", msg.ReplyTo))
	}
	headers = append(headers, fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("UTF-8", msg.Subject)))
	headers = append(headers, fmt.Sprintf("Date: %s", s.clock.Now().Format(time.RFC1123Z)))
	headers = append(headers, fmt.Sprintf("Message-ID: %s", messageID))
	headers = append(headers, "MIME-Version: 1.0")
	headers = append(headers, fmt.Sprintf("Content-Type: %s", contentType))
	headers = append(headers, fmt.Sprintf("Content-Transfer-Encoding: %s", encoding))

	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body)
}

// buildBody returns the message body with its top-level Content-Type and
// Content-Transfer-Encoding header values.
func buildBody(msg Message) (body, contentType, encoding string) {
	if msg.HTMLBody != "" && msg.TextBody != "" {
		boundary := multipartBoundary()
		var sb strings.Builder
		sb.WriteString("This is a multipart message in MIME format.\r\n")
		writePart(&sb, boundary, "text/plain; charset=UTF-8", msg.TextBody)
		writePart(&sb, boundary, "text/html; charset=UTF-8", msg.HTMLBody)
		fmt.Fprintf(&sb, "--%s--\r\n", boundary)
		return sb.String(), fmt.Sprintf("multipart/alternative; boundary=%s", boundary), "7bit"
	}

	if msg.HTMLBody != "" {
		return quotedPrintable(msg.HTMLBody), "text/html; charset=UTF-8", "quoted-printable"
	}

	return quotedPrintable(msg.TextBody), "text/plain; charset=UTF-8", "quoted-printable"
}

func writePart(sb *strings.Builder, boundary, contentType, content string) {
	fmt.Fprintf(sb, "--%s\r\n", boundary)
	fmt.Fprintf(sb, "Content-Type: %s\r\n", contentType)
	sb.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(quotedPrintable(content))
	sb.WriteString("\r\n")
}

func quotedPrintable(s string) string {
	var sb strings.Builder
	w := quotedprintable.NewWriter(&sb)
	//nolint:errcheck // strings.Builder never fails
	w.Write([]byte(s))
	//nolint:errcheck // strings.Builder never fails
	w.Close()
	return sb.String()
}

func multipartBoundary() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "gocontact-boundary-fallback"
	}
	return "gocontact-boundary-" + hex.EncodeToString(b[:])
}

func envelopeAddress(addr string) string {
	if parsed, err := netmail.ParseAddress(addr); err == nil {
		return parsed.Address
	}
	return addr
}

func classifySMTP(phase string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrRejected) || errors.Is(err, ErrConfigMissing) {
		return fmt.Errorf("smtp %s: %w", phase, err)
	}

	if isTimeout(err) {
		return fmt.Errorf("%w: smtp %s: %w", ErrTimeout, phase, err)
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535:
			return fmt.Errorf("%w: smtp %s: %w", ErrAuth, phase, err)
		default:
			return fmt.Errorf("%w: smtp %s: %w", ErrRejected, phase, err)
		}
	}

	if phase == phaseAuth {
		return fmt.Errorf("%w: smtp %s: %w", ErrAuth, phase, err)
	}

	return fmt.Errorf("smtp %s: %w", phase, err)
}
