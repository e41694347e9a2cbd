package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/adminpanel/admin-system/internal/api/metrics"
	"github.com/adminpanel/admin-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Message is a queued outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Dispatcher implements ports.Mailer asynchronously: Send enqueues and
// returns immediately, a fixed set of workers performs the SMTP delivery.
// Messages are sharded by recipient with consistent hashing, so mail to
// one address is delivered in the order it was enqueued.
type Dispatcher struct {
	workers []chan Message
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers
// delivering through mailer. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Message, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Message, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Send satisfies ports.Mailer. A nil return means the message was
// accepted for delivery, not that it was delivered. The call blocks only
// when the recipient's shard buffer is full.
func (d *Dispatcher) Send(_ context.Context, to, subject, html, text string) error {
	id := d.shardIndex(to)
	d.workers[id] <- Message{To: to, Subject: subject, HTML: html, Text: text}
	metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(d.workers[id])))
	return nil
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Message) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			metrics.MailQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			if err := d.mailer.Send(ctx, msg.To, msg.Subject, msg.HTML, msg.Text); err != nil {
				metrics.MailSendsTotal.WithLabelValues("failure").Inc()
				d.log.Error().Err(err).
					Str("to", msg.To).
					Int("worker_id", id).
					Msg("mail delivery failed")
				continue
			}
			metrics.MailSendsTotal.WithLabelValues("success").Inc()
		}
	}
}

var _ ports.Mailer = (*Dispatcher)(nil)
