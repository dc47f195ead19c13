package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/oxipay/payflow/internal/pkg/nvp"
	"github.com/sirupsen/logrus"
)

// Sensitive fields never reach a log line in clear text
var Sensitive = map[string]bool{
	"ACCT":    true,
	"CVV2":    true,
	"PWD":     true,
	"SWIPE":   true,
	"MICR":    true,
	"EXPDATE": true,
	"DL":      true,
	"SS":      true,
	"ABA":     true,
}

// New returns a logger writing text lines to out at level
func New(level string, out io.Writer) (*logrus.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false, FullTimestamp: true})
	return log, nil
}

// Mask rewrites an NVP string with every sensitive value hidden. Account
// numbers keep their last four digits. Text that cannot be read as NVP is
// replaced entirely.
func Mask(text string) string {
	if text == "" {
		return ""
	}
	m, err := nvp.Decode(text)
	if err != nil {
		return fmt.Sprintf("<unreadable NVP, %d bytes>", len(text))
	}

	w := nvp.NewWriter()
	for _, e := range m.Entries() {
		name, _ := m.Origin(e.Name)
		w.AppendString(name, maskValue(name, e.Value))
	}
	return w.String()
}

func maskValue(name, value string) string {
	if !Sensitive[name] || value == "" {
		return value
	}
	if name == "ACCT" && len(value) > 4 {
		return strings.Repeat("X", len(value)-4) + value[len(value)-4:]
	}
	return strings.Repeat("X", len(value))
}
