package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/goroutine"
	"github.com/x-xyz/contractmeta/base/log"
	"github.com/x-xyz/contractmeta/domain"
	"github.com/x-xyz/contractmeta/domain/view"
)

type slot struct {
	view view.View
	// cancel is non-nil while a run is in flight
	cancel context.CancelFunc
	// done is closed once the current generation is terminal
	done chan struct{}
}

type impl struct {
	mu       sync.Mutex
	slots    map[string]*slot
	metadata domain.MetadataUseCase
}

func New(metadata domain.MetadataUseCase) view.UseCase {
	return &impl{
		slots:    make(map[string]*slot),
		metadata: metadata,
	}
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (im *impl) Create(c bCtx.Ctx) (*view.View, error) {
	s := &slot{
		view: view.View{
			Id:        uuid.NewString(),
			Outcome:   domain.IdleOutcome(),
			UpdatedAt: time.Now(),
		},
		done: closedChan(),
	}

	im.mu.Lock()
	im.slots[s.view.Id] = s
	im.mu.Unlock()

	c.WithField("viewId", s.view.Id).Debug("view created")
	v := s.view
	return &v, nil
}

func (im *impl) Get(c bCtx.Ctx, id string) (*view.View, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	s, ok := im.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v := s.view
	return &v, nil
}

func (im *impl) Delete(c bCtx.Ctx, id string) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	s, ok := im.slots[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.abort()
	delete(im.slots, id)
	return nil
}

// abort cancels the in-flight run and releases its waiters. Caller holds im.mu.
func (s *slot) abort() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	close(s.done)
}

func (im *impl) Submit(c bCtx.Ctx, id string, network string, address domain.Address) (*view.View, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	s, ok := im.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	s.abort()
	s.view.Generation++
	s.view.Network = network
	s.view.Address = address
	s.view.UpdatedAt = time.Now()

	if address.IsUnset() {
		s.view.Outcome = domain.NoAddressOutcome().WithContract(network, address)
		s.done = closedChan()
		v := s.view
		return &v, nil
	}

	runCtx, cancel := bCtx.WithCancel(bCtx.Detach(c))
	runCtx = bCtx.WithValues(runCtx, map[string]interface{}{
		"viewId":     id,
		"generation": s.view.Generation,
	})
	s.cancel = cancel
	s.done = make(chan struct{})
	s.view.Outcome = domain.PendingOutcome("").WithContract(network, address)

	gen := s.view.Generation
	goroutine.RecoverableGo(func() {
		im.complete(runCtx, id, gen, im.metadata.ResolveContract(runCtx, network, address))
	},
		goroutine.WithLogger(runCtx.Logger),
		goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
			err := fmt.Errorf("resolution aborted: %v", p)
			o := domain.FailureOutcome("", domain.ReasonOf(err), err).WithContract(network, address)
			im.complete(runCtx, id, gen, o)
		}),
	)

	v := s.view
	return &v, nil
}

// complete stores o if gen is still the current generation of the view, otherwise o is stale
func (im *impl) complete(c bCtx.Ctx, id string, gen uint64, o *domain.Outcome) {
	im.mu.Lock()
	defer im.mu.Unlock()
	s, ok := im.slots[id]
	if !ok || s.view.Generation != gen || s.cancel == nil {
		c.WithField("state", o.State).Debug("discarding stale outcome")
		return
	}
	s.view.Outcome = o
	s.view.UpdatedAt = time.Now()
	s.abort()
}

func (im *impl) Wait(c bCtx.Ctx, id string) (*view.View, error) {
	for {
		im.mu.Lock()
		s, ok := im.slots[id]
		if !ok {
			im.mu.Unlock()
			return nil, domain.ErrNotFound
		}
		v := s.view
		done := s.done
		im.mu.Unlock()

		if v.Outcome.State != domain.StatePending {
			return &v, nil
		}
		select {
		case <-done:
			// superseded or completed, look again
		case <-c.Done():
			c.WithFields(log.Fields{
				"viewId": id,
				"err":    c.Err(),
			}).Debug("stop waiting")
			return &v, nil
		}
	}
}
