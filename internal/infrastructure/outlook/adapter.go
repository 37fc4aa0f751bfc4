// Package outlook reads the default inbox and creates reply drafts through
// the Outlook COM automation interface. It never sends anything: the only
// write operation is Save into the Drafts folder.
package outlook

import (
	"context"
	"fmt"
	"time"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

var _ output.MailPort = (*Adapter)(nil)

// olFolderInbox from the OlDefaultFolders enumeration.
const folderInbox = 6

type Adapter struct {
	application *ole.IDispatch
	namespace   *ole.IDispatch
	logger      output.LoggerPort
}

func NewAdapter(logger output.LoggerPort) (*Adapter, error) {
	if err := ole.CoInitialize(0); err != nil {
		oleErr, ok := err.(*ole.OleError)
		if !ok || oleErr.Code() != 1 {
			return nil, fmt.Errorf("initialize COM: %w", err)
		}
	}

	a := &Adapter{logger: logger}
	if err := a.attach(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// attach binds to a running Outlook instance and falls back to starting
// one; Outlook is single-instance, so CreateObject joins the running
// process when there is one.
func (a *Adapter) attach() error {
	unknown, err := oleutil.GetActiveObject("Outlook.Application")
	if err != nil {
		unknown, err = oleutil.CreateObject("Outlook.Application")
		if err != nil {
			return fmt.Errorf("cannot attach to Outlook: %w", err)
		}
	}
	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	unknown.Release()
	if err != nil {
		return fmt.Errorf("query Outlook dispatch interface: %w", err)
	}
	a.application = app

	ns, err := oleutil.CallMethod(app, "GetNamespace", "MAPI")
	if err != nil {
		return fmt.Errorf("open MAPI namespace: %w", err)
	}
	a.namespace = ns.ToIDispatch()
	return nil
}

func (a *Adapter) ListInbox(ctx context.Context, limit int) ([]entity.MailSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inbox, err := oleutil.CallMethod(a.namespace, "GetDefaultFolder", folderInbox)
	if err != nil {
		return nil, fmt.Errorf("open inbox: %w", err)
	}
	folder := inbox.ToIDispatch()
	defer folder.Release()

	itemsV, err := oleutil.GetProperty(folder, "Items")
	if err != nil {
		return nil, fmt.Errorf("read inbox items: %w", err)
	}
	items := itemsV.ToIDispatch()
	defer items.Release()

	// Newest first.
	if _, err := oleutil.CallMethod(items, "Sort", "[ReceivedTime]", true); err != nil {
		return nil, fmt.Errorf("sort inbox: %w", err)
	}

	countV, err := oleutil.GetProperty(items, "Count")
	if err != nil {
		return nil, fmt.Errorf("count inbox items: %w", err)
	}
	count := int(countV.Val)
	countV.Clear()
	if limit > 0 && count > limit {
		count = limit
	}

	summaries := make([]entity.MailSummary, 0, count)
	// Outlook item collections are 1-based.
	for i := 1; i <= count; i++ {
		itemV, err := oleutil.CallMethod(items, "Item", i)
		if err != nil {
			continue
		}
		item := itemV.ToIDispatch()
		summaries = append(summaries, entity.MailSummary{
			EntryID:    itemString(item, "EntryID"),
			Sender:     itemString(item, "SenderName"),
			Subject:    itemString(item, "Subject"),
			ReceivedAt: itemTime(item, "ReceivedTime"),
			Unread:     itemBool(item, "UnRead"),
		})
		item.Release()
	}
	return summaries, nil
}

func (a *Adapter) ReadMessage(ctx context.Context, entryID string) (*entity.MailMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item, err := a.itemByEntryID(entryID)
	if err != nil {
		return nil, err
	}
	defer item.Release()

	return &entity.MailMessage{
		EntryID:    entryID,
		Sender:     itemString(item, "SenderName"),
		SenderMail: itemString(item, "SenderEmailAddress"),
		Subject:    itemString(item, "Subject"),
		ReceivedAt: itemTime(item, "ReceivedTime"),
		Body:       itemString(item, "Body"),
	}, nil
}

func (a *Adapter) CreateDraftReply(ctx context.Context, entryID, body string) (*entity.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item, err := a.itemByEntryID(entryID)
	if err != nil {
		return nil, err
	}
	defer item.Release()

	replyV, err := oleutil.CallMethod(item, "Reply")
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	reply := replyV.ToIDispatch()
	defer reply.Release()

	quoted := itemString(reply, "Body")
	if _, err := oleutil.PutProperty(reply, "Body", body+"\n\n"+quoted); err != nil {
		return nil, fmt.Errorf("set reply body: %w", err)
	}

	// Save, never Send. The draft stays in the Drafts folder for review.
	if _, err := oleutil.CallMethod(reply, "Save"); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	draft := &entity.Draft{
		Subject: itemString(reply, "Subject"),
		To:      itemString(reply, "To"),
	}
	a.logger.Info("Draft reply saved", "subject", draft.Subject, "to", draft.To)
	return draft, nil
}

func (a *Adapter) Close() {
	for _, d := range []*ole.IDispatch{a.namespace, a.application} {
		if d != nil {
			d.Release()
		}
	}
	a.namespace, a.application = nil, nil
	ole.CoUninitialize()
}

func (a *Adapter) itemByEntryID(entryID string) (*ole.IDispatch, error) {
	v, err := oleutil.CallMethod(a.namespace, "GetItemFromID", entryID)
	if err != nil {
		return nil, fmt.Errorf("item not found: %s", entryID)
	}
	item := v.ToIDispatch()
	if item == nil {
		return nil, fmt.Errorf("item not found: %s", entryID)
	}
	return item, nil
}

func itemString(d *ole.IDispatch, name string) string {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return ""
	}
	defer v.Clear()
	return v.ToString()
}

func itemBool(d *ole.IDispatch, name string) bool {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return false
	}
	defer v.Clear()
	b, _ := v.Value().(bool)
	return b
}

func itemTime(d *ole.IDispatch, name string) time.Time {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return time.Time{}
	}
	defer v.Clear()
	if t, ok := v.Value().(time.Time); ok {
		return t
	}
	return time.Time{}
}
