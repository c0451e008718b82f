package crpt_go

import (
	"github.com/Oleg520/crpt-go/queue"
)

// Submitter queues documents for background submission through a Client.
// The client's rate gate and concurrency cap still govern every request;
// the Submitter only frees callers from waiting in line themselves.
type Submitter struct {
	config    submitterConfig
	client    *Client
	documents queue.Processor
}

func NewSubmitter(client *Client, opts ...SubmitterConfigOption) *Submitter {
	sConfig := defaultSubmitterConfig()
	for _, o := range opts {
		o(&sConfig)
	}

	pConfig := queue.ProcessorConfig{
		MaxWorkers:    sConfig.workers,
		MaxBufferSize: sConfig.bufferSize,
		MaxRetries:    sConfig.retryTimes,
		Retry:         sConfig.retry,
		Logger:        sConfig.logger,
	}

	return &Submitter{
		config: sConfig,
		client: client,
		documents: queue.NewProcessor(
			queue.NewDocumentsHandler(client.Documents(), sConfig.logger),
			sConfig.responseChan,
			pConfig,
		),
	}
}

func (s *Submitter) Documents() queue.Processor {
	return s.documents
}

func (s *Submitter) Start() {
	s.documents.Start()
}

func (s *Submitter) Stop() {
	s.documents.Stop()
}
