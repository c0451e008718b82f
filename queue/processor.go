package queue

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	crpt_errors "github.com/Oleg520/crpt-go/errors"
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/retry"
	"github.com/Oleg520/crpt-go/types"
)

// Processor drains queued document submissions in the background. Each
// message goes through the client's normal submission pipeline, so the
// rate gate and concurrency cap still apply; the processor only decouples
// the caller from the wait.
//
// Usage Example:
//
//	processor := queue.NewProcessor(
//	    queue.NewDocumentsHandler(client.Documents(), myLogger),
//	    responseChan,        // Optional channel to receive outcomes
//	    queue.ProcessorConfig{
//	        MaxWorkers: 4,   // Concurrent submitters
//	        MaxRetries: 3,   // Retry transport failures up to 3 times
//	    },
//	)
//
//	processor.Start()
//	processor.Add(queue.Message{Document: doc, Signature: sig})
//	// ... outcomes arrive on responseChan
//	processor.Stop()
type Processor interface {
	// Start begins draining the queue. This method is idempotent -
	// calling Start() multiple times has no effect if already running.
	Start()

	// Stop gracefully shuts down the processor. It closes the message
	// channel, waits for all in-flight submissions to complete, and
	// prepares for potential restart.
	// This method is idempotent - calling Stop() multiple times
	// has no effect if already stopped.
	Stop()

	// Add queues a document for background submission. This method is
	// thread-safe and will block if the internal buffer is full.
	Add(msg Message)
}

type processor struct {
	handler  Handler
	reqChan  chan Message
	respChan chan<- Response
	config   ProcessorConfig
	logger   logger.Logger
	retry    retry.Retry
	syncReq  sync.WaitGroup
	workers  errgroup.Group
	mu       sync.RWMutex
	running  bool
}

func NewProcessor(
	handler Handler,
	respChan chan<- Response,
	config ProcessorConfig,
) Processor {
	config = applyProcessorConfig(config)

	p := &processor{
		handler:  handler,
		reqChan:  make(chan Message, config.MaxBufferSize),
		respChan: respChan,
		config:   config,
		logger:   config.Logger,
		retry:    config.Retry,
	}
	return p
}

func (p *processor) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	p.workers.SetLimit(p.config.MaxWorkers)
	p.workers.Go(func() error {
		p.listen()
		return nil
	})
	p.running = true
}

func (p *processor) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	// initiate exit from the "listen" loop
	close(p.reqChan)

	// wait for all goroutines to finish
	err := p.workers.Wait()
	if err != nil {
		p.logger.Errorf("queue.Processor: failed to wait for in-flight submissions: %v", err)
	}

	// wait for all sync calls to finish
	p.syncReq.Wait()

	// override reqChan to handle a Start->Stop->Start case
	// as next call to Add() will panic if the channel is closed
	p.reqChan = make(chan Message, p.config.MaxBufferSize)
	p.running = false
	p.logger.Debugf("queue.Processor: drained last submission")
}

func (p *processor) Add(msg Message) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	p.reqChan <- msg
}

func (p *processor) listen() {
	p.logger.Debugf("queue.Processor: listening...")

	for msg := range p.reqChan {
		msg := msg
		p.workers.Go(func() error {
			p.process(msg)
			return nil
		})
	}
}

func (p *processor) process(msg Message) {
	p.syncReq.Add(1)
	defer p.syncReq.Done()

	var res *types.CreateDocumentResponse
	err := p.retry.Do(
		p.config.MaxRetries,
		"submit-document",
		func(attempt int) (error, retry.ExitStrategy) {
			r, err := p.handler.Submit(context.Background(), msg)
			if err != nil {
				if crpt_errors.IsTransport(err) {
					// Connectivity may come back; the registry's
					// verdict will not.
					return err, retry.Continue
				}
				return err, retry.StopNow
			}
			res = r
			return nil, retry.StopNow
		},
	)

	if p.respChan != nil {
		p.respChan <- Response{Message: msg, Result: res, Err: err}
	}
}
