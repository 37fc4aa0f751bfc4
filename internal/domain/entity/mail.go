package entity

import (
	"fmt"
	"time"
)

// MailSummary is one inbox listing entry. EntryID is the Outlook item key
// used to read the full message later.
type MailSummary struct {
	EntryID    string
	Sender     string
	Subject    string
	ReceivedAt time.Time
	Unread     bool
}

func (m *MailSummary) String() string {
	marker := " "
	if m.Unread {
		marker = "*"
	}
	return fmt.Sprintf("%s %s | %s | %s | entry_id=%s",
		marker, m.ReceivedAt.Format("2006-01-02 15:04"), m.Sender, m.Subject, m.EntryID)
}

// MailMessage is a fully read inbox item.
type MailMessage struct {
	EntryID    string
	Sender     string
	SenderMail string
	Subject    string
	ReceivedAt time.Time
	Body       string
}

// Draft describes a saved (never sent) reply draft.
type Draft struct {
	Subject string
	To      string
}
