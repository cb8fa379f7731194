package cli

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-miscord/internal/app"
	"github.com/MKhiriev/go-miscord/internal/config"
)

// renderSetupNotice formats a [config.SetupError] as a boxed message naming
// the config file and the config generator link.
func renderSetupNotice(err *config.SetupError) string {
	var b strings.Builder

	box := errorBoxStyle
	if errors.Is(err, config.ErrSetupIncomplete) {
		box = warningBoxStyle
		b.WriteString(titleStyle.Render(app.MsgSetupIncomplete))
		b.WriteString("\n")
		b.WriteString(app.MsgDefaultConfigCopied + " " + err.Path)
	} else {
		b.WriteString(titleStyle.Render(app.MsgCredentialsNotFound))
		if err.Detail != "" {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(err.Detail))
		}
		b.WriteString("\n")
		b.WriteString(app.MsgCheckConfigHere + " " + err.Path)
	}

	b.WriteString("\n")
	b.WriteString(app.MsgUseConfigGenerator)
	b.WriteString("\n")
	b.WriteString(linkStyle.Render(err.GuideURL))

	return box.Render(b.String())
}
