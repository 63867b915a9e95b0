package extract

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Document is one raw résumé handed to the pipeline.
type Document struct {
	Name   string // original filename, used for logging only
	Format string // declared format tag or MIME type
	Data   []byte
}

// CandidateRecord is the normalized output for one résumé. Immutable
// after assembly.
type CandidateRecord struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Role             string   `json:"role"`
	Experience       string   `json:"experience"`
	MissingSkills    []string `json:"missing_skills"`
	UnexpectedSkills []string `json:"unexpected_skills"`
	ExtraSkills      []string `json:"extra_skills"`
}

type indexedRecord struct {
	index  int
	record CandidateRecord
}

// Batch accumulates candidate records across one run. Appends are
// serialized; records never change once added.
type Batch struct {
	mu      sync.Mutex
	records []indexedRecord
	skipped int
}

func (b *Batch) add(index int, record CandidateRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, indexedRecord{index: index, record: record})
}

func (b *Batch) skip() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.skipped++
}

// Records returns the assembled records in source-document order.
func (b *Batch) Records() []CandidateRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	sort.Slice(b.records, func(i, j int) bool {
		return b.records[i].index < b.records[j].index
	})
	records := make([]CandidateRecord, len(b.records))
	for i, r := range b.records {
		records[i] = r.record
	}
	return records
}

// Skipped reports how many documents could not be read.
func (b *Batch) Skipped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.skipped
}

// Pipeline runs documents through load, field extraction, skill
// matching and gap reconciliation, producing one record per readable
// document.
type Pipeline struct {
	Required    SkillSet
	Extractor   *Extractor
	Workers     int           // concurrent documents, default 3
	LoadTimeout time.Duration // bound on a single text extraction, default 30s
	Logger      *zap.Logger
}

const (
	defaultWorkers     = 3
	defaultLoadTimeout = 30 * time.Second
)

// Run processes the documents and returns the batch. Unreadable
// documents are skipped and counted, never aborting the run. Zero
// documents is a valid no-op. On context cancellation the records
// assembled so far are kept and ctx.Err() is returned.
func (p *Pipeline) Run(ctx context.Context, docs []Document) (*Batch, error) {
	batch := &Batch{}
	if len(docs) == 0 {
		return batch, nil
	}

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for index := range jobs {
				p.process(ctx, batch, index, docs[index])
			}
		}()
	}

feed:
	for index := range docs {
		select {
		case jobs <- index:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return batch, ctx.Err()
}

func (p *Pipeline) process(ctx context.Context, batch *Batch, index int, doc Document) {
	text, err := p.load(ctx, doc)
	if err != nil {
		p.logger().Warn("skipping unreadable document",
			zap.String("document", doc.Name),
			zap.Error(err),
		)
		batch.skip()
		return
	}

	// Field extraction and skill matching are independent pure reads
	// of the same text.
	fields := p.extractor().Fields(text)
	detected, unexpected := Match(text, p.Required)

	// Missing comes from the matcher's detected set; extra from the
	// candidate's self-declared list.
	missing := Reconcile(detected, p.Required).Missing
	extra := Reconcile(DeclaredSkills(text), p.Required).Extra

	batch.add(index, CandidateRecord{
		Name:             fields.Name,
		Email:            fields.Email,
		Role:             fields.Role,
		Experience:       fields.Experience,
		MissingSkills:    missing.Names(),
		UnexpectedSkills: unexpected,
		ExtraSkills:      extra.Names(),
	})
}

// load bounds a single text extraction so a pathological file cannot
// stall the whole batch.
func (p *Pipeline) load(ctx context.Context, doc Document) (string, error) {
	timeout := p.LoadTimeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := ExtractText(doc.Format, doc.Data)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}

func (p *Pipeline) extractor() *Extractor {
	if p.Extractor != nil {
		return p.Extractor
	}
	return NewExtractor(nil)
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return zap.NewNop()
}
