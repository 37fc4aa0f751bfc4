package output

import (
	"context"

	"sap-agent/internal/domain/entity"
)

// MailPort reads the Outlook inbox and creates reply drafts. The port
// deliberately exposes no send operation: drafts are saved for a human to
// review and nothing ever leaves the machine automatically.
type MailPort interface {
	ListInbox(ctx context.Context, limit int) ([]entity.MailSummary, error)
	ReadMessage(ctx context.Context, entryID string) (*entity.MailMessage, error)
	CreateDraftReply(ctx context.Context, entryID, body string) (*entity.Draft, error)

	Close()
}
