package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// BulletFormatter renders log entries as hierarchical bullets, in the style
// of release tooling output.
//
// Entries carrying a "phase" field produce top-level bullets:
//
//	  * bundling platforms
//
// Other info-level entries are sub-bullets, warnings get a "!" marker, and
// errors an "x" marker:
//
//	    * zipping Lectrote-win32-x64
//	    ! bundler exited with an error
//	  x no platforms matched the given filters
//
// Remaining key-value fields are appended as key=value pairs.
type BulletFormatter struct{}

func (f *BulletFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	phase, hasPhase := entry.Data["phase"]

	switch {
	case hasPhase:
		fmt.Fprintf(&buf, "  * %s", phase)
		if entry.Message != "" {
			fmt.Fprintf(&buf, ": %s", entry.Message)
		}
		buf.WriteString(formatFields(entry.Data, "phase"))
	case entry.Level == logrus.ErrorLevel:
		fmt.Fprintf(&buf, "  x %s", entry.Message)
		buf.WriteString(formatFields(entry.Data))
	case entry.Level == logrus.WarnLevel:
		fmt.Fprintf(&buf, "    ! %s", entry.Message)
		buf.WriteString(formatFields(entry.Data))
	default:
		fmt.Fprintf(&buf, "    * %s", entry.Message)
		buf.WriteString(formatFields(entry.Data))
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// formatFields returns a formatted string of key=value pairs, excluding
// the specified skip keys. Returns empty string if no fields remain.
func formatFields(fields logrus.Fields, skip ...string) string {
	skipSet := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipSet[s] = true
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if !skipSet[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	return "  " + strings.Join(parts, " ")
}
