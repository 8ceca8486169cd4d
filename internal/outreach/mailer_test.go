package outreach

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSendDryRun(t *testing.T) {
	m := NewMailer("smtp.example.com", 587, "", "", true, zap.NewNop())

	err := m.Send("recruiter@corp.com", Invite{
		To:      "jane@corp.com",
		Subject: "Interview Invitation",
		Body:    "Hello",
	})
	if err != nil {
		t.Errorf("dry-run Send returned %v, want nil", err)
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	m := NewMailer("smtp.example.com", 587, "", "", true, zap.NewNop())

	if err := m.Send("recruiter@corp.com", Invite{Subject: "x", Body: "y"}); err == nil {
		t.Error("Send without recipient returned nil error")
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("recruiter@corp.com", Invite{
		To:      "jane@corp.com",
		Subject: "Interview Invitation",
		Body:    "Hello Jane",
	}))

	for _, want := range []string{
		"From: recruiter@corp.com\r\n",
		"To: jane@corp.com\r\n",
		"Subject: Interview Invitation\r\n",
		"Content-Type: text/plain; charset=\"utf-8\"\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if !strings.HasSuffix(msg, "\r\n\r\nHello Jane") {
		t.Errorf("message body not separated by blank line:\n%s", msg)
	}
}
