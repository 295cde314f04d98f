package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"mailgate/config"
	"mailgate/internal/model"
)

// Fetcher retrieves unseen messages over IMAP. Each call opens a fresh
// authenticated session and closes it before returning.
type Fetcher struct {
	cfg config.IMAPConfig
}

func NewFetcher(cfg config.IMAPConfig) *Fetcher {
	return &Fetcher{cfg: cfg}
}

// FetchUnseen runs the strict sequence dial → login → select → search UNSEEN
// → fetch header/text → logout. The mailbox is selected read-only and body
// parts are fetched with PEEK, so messages keep their unseen flag. If any
// step fails the whole call fails; no partial result is returned.
func (f *Fetcher) FetchUnseen(ctx context.Context) ([]model.FetchedMessage, error) {
	addr := fmt.Sprintf("%s:%d", f.cfg.Host, f.cfg.Port)
	c, err := client.DialTLS(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("imap dial %s: %w", addr, err)
	}
	defer c.Logout()

	if err := c.Login(f.cfg.User, f.cfg.Password); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select(f.cfg.Mailbox, true); err != nil {
		return nil, fmt.Errorf("imap select %s: %w", f.cfg.Mailbox, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("imap search: %w", err)
	}
	if len(ids) == 0 {
		return []model.FetchedMessage{}, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	headerSection := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{Specifier: imap.HeaderSpecifier},
		Peek:         true,
	}
	textSection := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{Specifier: imap.TextSpecifier},
		Peek:         true,
	}
	items := []imap.FetchItem{
		imap.FetchEnvelope,
		headerSection.FetchItem(),
		textSection.FetchItem(),
	}

	ch := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, ch)
	}()

	messages := make([]model.FetchedMessage, 0, len(ids))
	for msg := range ch {
		fm := model.FetchedMessage{
			SeqNum: msg.SeqNum,
			Header: readSection(msg, headerSection),
			Body:   readSection(msg, textSection),
		}
		if msg.Envelope != nil {
			fm.Subject = msg.Envelope.Subject
			fm.Date = msg.Envelope.Date
			if len(msg.Envelope.From) > 0 {
				fm.From = msg.Envelope.From[0].Address()
			}
		}
		messages = append(messages, fm)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("imap fetch: %w", err)
	}

	return messages, nil
}

func readSection(msg *imap.Message, section *imap.BodySectionName) string {
	r := msg.GetBody(section)
	if r == nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return ""
	}
	return buf.String()
}
