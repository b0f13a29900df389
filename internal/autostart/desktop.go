package autostart

import (
	"fmt"
	"strings"
)

// buildDesktopEntry renders the XDG autostart definition used on Linux.
func buildDesktopEntry(execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=pamplemousse
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		execLine,
	)
}
