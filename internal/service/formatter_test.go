package service

import (
	"strings"
	"testing"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
	"github.com/stretchr/testify/require"
)

var testMeta = model.Metadata{Address: "203.0.113.7", UserAgent: "Mozilla/5.0", Timestamp: "1/15/2025, 12:00:00 PM"}

func TestFormatter_PhotoCaption(t *testing.T) {
	f := NewFormatter(ParseModeMarkdown, "Asia/Beirut")
	want := "📸 *Visitor Photo*\n🌐 IP: 203.0.113.7\n🖥️ Mozilla/5.0\n⏰ 1/15/2025, 12:00:00 PM"
	require.Equal(t, want, f.PhotoCaption(testMeta))
	require.Equal(t, f.PhotoCaption(testMeta), f.PhotoCaption(testMeta))
}
func TestFormatter_ContactMessage(t *testing.T) {
	f := NewFormatter(ParseModeMarkdown, "Asia/Beirut")
	sub := model.ContactSubmission{Email: "a@b.co", Instagram: "@ab", Subject: "Hi", Message: "Hello there"}
	want := strings.Join([]string{
		"📬 *New Contact Form Submission*",
		"",
		"📧 *Email:* a@b.co",
		"📸 *Instagram:* @ab",
		"📌 *Subject:* Hi",
		"",
		"💬 *Complain / Message:*",
		"Hello there",
		"",
		"─────────────────",
		"🌐 *IP Address:* 203.0.113.7",
		"🖥️ *Device:* Mozilla/5.0",
		"⏰ *Time (Beirut):* 1/15/2025, 12:00:00 PM",
	}, "\n")
	require.Equal(t, want, f.ContactMessage(sub, testMeta))
}
func TestFormatter_InstagramNotProvided(t *testing.T) {
	f := NewFormatter(ParseModeMarkdown, "Asia/Beirut")
	text := f.ContactMessage(model.ContactSubmission{Email: "a@b.co", Subject: "Hi", Message: "x"}, testMeta)
	require.Contains(t, text, "📸 *Instagram:* Not provided\n")
}
func TestFormatter_Truncation(t *testing.T) {
	f := NewFormatter(ParseModePlain, "Asia/Beirut")
	meta := testMeta
	meta.UserAgent = strings.Repeat("é", 300)

	caption := f.PhotoCaption(meta)
	require.Contains(t, caption, "🖥️ "+strings.Repeat("é", PhotoUserAgentLimit)+"\n")
	require.NotContains(t, caption, strings.Repeat("é", PhotoUserAgentLimit+1))

	text := f.ContactMessage(model.ContactSubmission{Email: "a", Subject: "b", Message: "c"}, meta)
	require.Contains(t, text, "🖥️ *Device:* "+strings.Repeat("é", ContactUserAgentLimit)+"\n")
	require.NotContains(t, text, strings.Repeat("é", ContactUserAgentLimit+1))

	meta.UserAgent = strings.Repeat("a", PhotoUserAgentLimit)
	require.Contains(t, f.PhotoCaption(meta), "🖥️ "+meta.UserAgent+"\n")
}
func TestFormatter_Escaping(t *testing.T) {
	sub := model.ContactSubmission{Email: "first_last@x.io", Instagram: "@my_name", Subject: "*urgent*", Message: "see [link] and `code`"}

	markdown := NewFormatter(ParseModeMarkdown, "Asia/Beirut").ContactMessage(sub, testMeta)
	require.Contains(t, markdown, `📧 *Email:* first\_last@x.io`)
	require.Contains(t, markdown, `📸 *Instagram:* @my\_name`)
	require.Contains(t, markdown, `📌 *Subject:* \*urgent\*`)
	require.Contains(t, markdown, "see \\[link] and \\`code\\`")

	plain := NewFormatter(ParseModePlain, "Asia/Beirut").ContactMessage(sub, testMeta)
	require.Contains(t, plain, "📧 *Email:* first_last@x.io")
	require.Contains(t, plain, "see [link] and `code`")
}
func TestNewFormatter_ZoneLabel(t *testing.T) {
	require.Equal(t, "Beirut", NewFormatter(ParseModeMarkdown, "Asia/Beirut").zoneLabel)
	require.Equal(t, "New York", NewFormatter(ParseModeMarkdown, "America/New_York").zoneLabel)
	require.Equal(t, "UTC", NewFormatter(ParseModeMarkdown, "UTC").zoneLabel)
}
