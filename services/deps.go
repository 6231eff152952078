package services

import (
	"context"
	"io"
	"log"
	"time"

	"digitalagency/cloudinary"
	"digitalagency/mailer"
)

// MailSender is the outbound mail channel.
type MailSender interface {
	Send(ctx context.Context, to string, email mailer.Email) error
}

// ImageStore hosts portfolio images externally.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (*cloudinary.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

const detachedTimeout = 15 * time.Second

// detachedSend delivers mail after the primary write has already been
// committed and its response determined. Failures are logged and discarded;
// there are no retries.
func detachedSend(mail MailSender, to string, email mailer.Email) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachedTimeout)
		defer cancel()

		if err := mail.Send(ctx, to, email); err != nil {
			log.Printf("mail notification to %s failed: %v", to, err)
		}
	}()
}

// detachedDestroy is the best-effort cleanup of an externally-hosted image
// after its owning document is gone.
func detachedDestroy(images ImageStore, publicID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachedTimeout)
		defer cancel()

		if err := images.Destroy(ctx, publicID); err != nil {
			log.Printf("image cleanup for %s failed: %v", publicID, err)
		}
	}()
}
