package mailbox

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"
	gmail "google.golang.org/api/gmail/v1"
)

// Attachment is one résumé file pulled from the mailbox, with the
// message metadata the sink reports alongside it.
type Attachment struct {
	Filename string
	Data     []byte
	Sender   string
	Subject  string
	Date     string
}

// Client retrieves CV attachments from a Gmail mailbox. The service is
// expected to be already authorized; token handling is not this
// package's concern.
type Client struct {
	svc    *gmail.Service
	logger *zap.Logger
}

func New(svc *gmail.Service, logger *zap.Logger) *Client {
	return &Client{svc: svc, logger: logger}
}

// FetchAttachments lists the messages matching query and downloads
// every named attachment. A message that cannot be read is logged and
// skipped; it never fails the whole fetch.
func (c *Client) FetchAttachments(ctx context.Context, query string) ([]Attachment, error) {
	resp, err := c.svc.Users.Messages.List("me").Q(query).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	var attachments []Attachment
	for _, ref := range resp.Messages {
		msg, err := c.svc.Users.Messages.Get("me", ref.Id).Context(ctx).Do()
		if err != nil {
			c.logger.Warn("skipping unreadable message", zap.String("message_id", ref.Id), zap.Error(err))
			continue
		}
		if msg.Payload == nil {
			continue
		}

		sender, subject, date := headerValues(msg.Payload.Headers)
		for _, part := range msg.Payload.Parts {
			if part.Filename == "" || part.Body == nil {
				continue
			}
			data, err := c.partData(ctx, ref.Id, part.Body)
			if err != nil {
				c.logger.Warn("skipping attachment",
					zap.String("message_id", ref.Id),
					zap.String("filename", part.Filename),
					zap.Error(err),
				)
				continue
			}
			attachments = append(attachments, Attachment{
				Filename: part.Filename,
				Data:     data,
				Sender:   sender,
				Subject:  subject,
				Date:     date,
			})
		}
	}
	return attachments, nil
}

func (c *Client) partData(ctx context.Context, messageID string, body *gmail.MessagePartBody) ([]byte, error) {
	if body.Data != "" {
		return decodeWebSafe(body.Data)
	}
	if body.AttachmentId == "" {
		return nil, fmt.Errorf("attachment body has no data and no attachment id")
	}
	att, err := c.svc.Users.Messages.Attachments.Get("me", messageID, body.AttachmentId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("getting attachment: %w", err)
	}
	return decodeWebSafe(att.Data)
}

// decodeWebSafe decodes the web-safe base64 Gmail uses, with or
// without padding.
func decodeWebSafe(data string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
}

func headerValues(headers []*gmail.MessagePartHeader) (sender, subject, date string) {
	for _, h := range headers {
		switch h.Name {
		case "From":
			sender = h.Value
		case "Subject":
			subject = h.Value
		case "Date":
			date = h.Value
		}
	}
	return sender, subject, date
}
