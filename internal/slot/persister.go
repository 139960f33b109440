package slot

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Persister writes cart snapshots to a Slot in the background.
//
// At most one snapshot waits to be written. A newer snapshot replaces the
// waiting one, so the slot always converges to the latest submitted cart.
// Submit never blocks on I/O.
type Persister struct {
	slot    Slot
	key     string
	timeout time.Duration
	logger  zerolog.Logger

	mu      sync.Mutex
	closed  bool
	pending chan []model.CartLine
	quit    chan struct{}
	done    chan struct{}
}

// NewPersister starts the background writer for key.
func NewPersister(s Slot, key string, writeTimeout time.Duration, logger zerolog.Logger) *Persister {
	p := &Persister{
		slot:    s,
		key:     key,
		timeout: writeTimeout,
		logger:  logger.With().Str("component", "persister").Str("key", key).Logger(),
		pending: make(chan []model.CartLine, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Restore reads the stored cart. A missing key, an unreadable backend or an
// unparseable payload all yield an empty cart.
func (p *Persister) Restore(ctx context.Context) []model.CartLine {
	data, err := p.slot.Load(ctx, p.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			p.logger.Info().Msg("no stored cart, starting empty")
		} else {
			p.logger.Warn().Err(err).Msg("failed to load stored cart, starting empty")
		}
		return []model.CartLine{}
	}

	lines, err := DecodeCart(data)
	if err != nil {
		p.logger.Warn().Err(err).Msg("stored cart is malformed, starting empty")
		return []model.CartLine{}
	}

	p.logger.Info().Int("lines", len(lines)).Msg("cart restored")
	return lines
}

// Submit queues a snapshot of lines for writing, replacing any snapshot not
// yet written. Submit after Close is ignored.
func (p *Persister) Submit(lines []model.CartLine) {
	snapshot := make([]model.CartLine, len(lines))
	copy(snapshot, lines)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	for {
		select {
		case p.pending <- snapshot:
			return
		default:
		}
		// Drop the stale snapshot. The writer may have taken it already.
		select {
		case <-p.pending:
		default:
		}
	}
}

// Close writes the pending snapshot, if any, and stops the writer. It returns
// ctx.Err() if ctx ends first.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.quit)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister) run() {
	defer close(p.done)

	for {
		select {
		case lines := <-p.pending:
			p.write(lines)
		case <-p.quit:
			select {
			case lines := <-p.pending:
				p.write(lines)
			default:
			}
			return
		}
	}
}

func (p *Persister) write(lines []model.CartLine) {
	data, err := EncodeCart(lines)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to encode cart snapshot")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.slot.Save(ctx, p.key, data); err != nil {
		p.logger.Error().Err(err).Msg("failed to persist cart snapshot")
		return
	}

	p.logger.Debug().Int("lines", len(lines)).Msg("cart snapshot persisted")
}
