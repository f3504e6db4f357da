package service

import (
	"strings"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
)

const (
	ParseModeMarkdown = "Markdown"
	ParseModePlain    = ""
)

const (
	PhotoUserAgentLimit   = 100
	ContactUserAgentLimit = 120
	NotProvided           = "Not provided"
	separatorLine         = "─────────────────"
)

var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

// Formatter renders notification text. Output depends only on its inputs.
type Formatter struct {
	parseMode string
	zoneLabel string
}

// NewFormatter takes the timezone the extractor renders timestamps in; its
// city part labels the time line, "Asia/Beirut" becoming "Beirut".
func NewFormatter(parseMode, timezone string) *Formatter {
	label := timezone[strings.LastIndex(timezone, "/")+1:]
	return &Formatter{parseMode: parseMode, zoneLabel: strings.ReplaceAll(label, "_", " ")}
}

func (f *Formatter) PhotoCaption(meta model.Metadata) string {
	return strings.Join([]string{
		"📸 *Visitor Photo*",
		"🌐 IP: " + f.escape(meta.Address),
		"🖥️ " + f.escape(truncate(meta.UserAgent, PhotoUserAgentLimit)),
		"⏰ " + meta.Timestamp,
	}, "\n")
}

func (f *Formatter) ContactMessage(sub model.ContactSubmission, meta model.Metadata) string {
	instagram := NotProvided
	if sub.Instagram != "" {
		instagram = f.escape(sub.Instagram)
	}
	return strings.Join([]string{
		"📬 *New Contact Form Submission*",
		"",
		"📧 *Email:* " + f.escape(sub.Email),
		"📸 *Instagram:* " + instagram,
		"📌 *Subject:* " + f.escape(sub.Subject),
		"",
		"💬 *Complain / Message:*",
		f.escape(sub.Message),
		"",
		separatorLine,
		"🌐 *IP Address:* " + f.escape(meta.Address),
		"🖥️ *Device:* " + f.escape(truncate(meta.UserAgent, ContactUserAgentLimit)),
		"⏰ *Time (" + f.zoneLabel + "):* " + meta.Timestamp,
	}, "\n")
}

func (f *Formatter) escape(s string) string {
	if f.parseMode != ParseModeMarkdown {
		return s
	}
	return markdownEscaper.Replace(s)
}

// truncate cuts s to at most limit characters without any marker.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
