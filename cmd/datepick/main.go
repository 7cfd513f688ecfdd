package main

import (
	"os"
	"regexp"
	"strings"

	"datepick/internal/cli"
)

var monthArg = regexp.MustCompile(`^\d{4}-\d{2}$`)

// rewriteMonthShortcutArgs turns `datepick 2024-03` into
// `datepick sheet --month 2024-03`. Persistent flags may come first, so the
// first positional token is located rather than assumed to be argv[1].
func rewriteMonthShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":      true,
		"--config":      true,
		"--log-level":   true,
		"--locale":      true,
		"--first-day":   true,
		"--military":    true,
		"--min":         true,
		"--max":         true,
		"--date-format": true,
		"--timezone":    true,
		"--time-labels": true,
		"--month-names": true,
		"--day-names":   true,
		"--theme":       true,
	}

	rewrite := func(i int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "sheet", "--month")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			if i+1 < len(argv) && monthArg.MatchString(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i]...)
				out = append(out, "sheet", "--month")
				return append(out, argv[i+1:]...)
			}
			return argv
		case strings.HasPrefix(a, "-"):
			// Bool flags and --flag=value take no separate value.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if monthArg.MatchString(a) {
			return rewrite(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteMonthShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
