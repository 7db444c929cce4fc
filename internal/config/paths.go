package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath resolves a leading ~ and environment references in p. $VAR and
// ${VAR} work everywhere; %VAR% is also understood on Windows. Unknown
// %VAR% references are kept as written.
func expandPath(p string) string {
	if p == "" {
		return ""
	}

	p = os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		p = expandPercentVars(p)
	}

	rest, ok := cutHome(p)
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest)
}

// cutHome reports whether p starts with the home shorthand and returns what
// follows it.
func cutHome(p string) (string, bool) {
	if p == "~" {
		return "", true
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return rest, true
	}
	if runtime.GOOS == "windows" {
		return strings.CutPrefix(p, `~\`)
	}
	return "", false
}

func expandPercentVars(p string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(p, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(p[start+1:], '%')
		if end < 0 {
			break
		}
		end += start + 1

		b.WriteString(p[:start])
		name := p[start+1 : end]
		if val, ok := os.LookupEnv(name); ok && name != "" {
			b.WriteString(val)
			p = p[end+1:]
			continue
		}
		// Keep the opening % and rescan from the closing one.
		b.WriteByte('%')
		p = p[start+1:]
	}
	b.WriteString(p)
	return b.String()
}
