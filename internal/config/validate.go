package config

import (
	"fmt"
	"net"
	"os"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy of cfg and everything wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.App.Addr = strings.TrimSpace(out.App.Addr)
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))
	out.Log.Format = strings.ToLower(strings.TrimSpace(out.Log.Format))
	out.Catalog.Path = strings.TrimSpace(out.Catalog.Path)
	out.CORS.AllowOrigins = trimList(out.CORS.AllowOrigins)

	// ---- Validation rules ----

	if out.App.Addr == "" {
		res.addErr("app.addr is required")
	} else if _, port, err := net.SplitHostPort(out.App.Addr); err != nil || port == "" {
		res.addErr("app.addr must be host:port (got %q)", out.App.Addr)
	}

	switch out.Log.Level {
	case "debug", "info", "warn", "error":
	case "":
		out.Log.Level = "info"
	default:
		res.addErr("log.level must be one of debug, info, warn, error (got %q)", out.Log.Level)
	}
	switch out.Log.Format {
	case "text", "json":
	case "":
		out.Log.Format = "text"
	default:
		res.addErr("log.format must be text or json (got %q)", out.Log.Format)
	}

	if out.Catalog.Path != "" {
		if _, err := os.Stat(out.Catalog.Path); err != nil {
			res.addErr("catalog.path %q is not readable: %v", out.Catalog.Path, err)
		}
	}

	if out.Contact.RatePerSecond <= 0 {
		res.addErr("contact.rate_per_second must be > 0")
	} else if out.Contact.RatePerSecond > 50 {
		res.addWarn("contact.rate_per_second is very high (%g); the form is easy to flood.", out.Contact.RatePerSecond)
	}
	if out.Contact.Burst <= 0 {
		res.addErr("contact.burst must be > 0")
	}
	if out.Contact.MaxMessageLen <= 0 {
		res.addErr("contact.max_message_len must be > 0")
	}
	if out.Contact.ResetAfterSeconds < 0 {
		res.addErr("contact.reset_after_seconds must be >= 0")
	}

	for _, o := range out.CORS.AllowOrigins {
		if o == "*" && len(out.CORS.AllowOrigins) > 1 {
			res.addWarn("cors.allow_origins contains \"*\" alongside explicit origins; the explicit ones are redundant.")
			break
		}
	}

	return out, res
}
