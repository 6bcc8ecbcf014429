package polarity

import (
	"sync"

	"github.com/heliograph/fluxseg/field"
)

// Detect runs the full segmentation pipeline on a raw signed field:
// split into polarity channels (NaN/Inf sanitized to 0), label each channel
// by seeded descending labeling, finalize each labeling into canonical
// size-filtered regions. The two channels share no mutable state and are
// processed concurrently; their outputs are independent artifacts.
//
// Returns ErrNilField for a nil input and ErrOptionViolation for invalid
// options; finalizer failures are passed through.
// Complexity: O(n log n) time, n = rows×cols, channels in parallel.
func Detect(f *field.Field, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}

	// Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	pos, neg, err := Split(f)
	if err != nil {
		return nil, err
	}

	// Each goroutine owns its channel's field, map and error slot.
	res := &Result{}
	var posErr, negErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.Positive, res.PositiveSeeds, posErr = runChannel(pos, cfg)
	}()
	go func() {
		defer wg.Done()
		res.Negative, res.NegativeSeeds, negErr = runChannel(neg, cfg)
	}()
	wg.Wait()

	if posErr != nil {
		return nil, posErr
	}
	if negErr != nil {
		return nil, negErr
	}

	return res, nil
}

// DetectPositive segments only the positive-polarity channel and returns
// its finalized label map.
func DetectPositive(f *field.Field, opts ...Option) (*field.LabelMap, error) {
	m, _, err := detectOne(f, true, opts)

	return m, err
}

// DetectNegative segments only the negative-polarity channel and returns
// its finalized label map.
func DetectNegative(f *field.Field, opts ...Option) (*field.LabelMap, error) {
	m, _, err := detectOne(f, false, opts)

	return m, err
}

// detectOne shares the option plumbing between the single-channel variants.
func detectOne(f *field.Field, positive bool, opts []Option) (*field.LabelMap, int, error) {
	if f == nil {
		return nil, 0, ErrNilField
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, 0, cfg.err
	}

	pos, neg, err := Split(f)
	if err != nil {
		return nil, 0, err
	}
	ch := pos
	if !positive {
		ch = neg
	}

	return runChannel(ch, cfg)
}

// runChannel labels one sanitized channel and finalizes the result.
// The raw seed count is MaxLabel of the labeler output: raw IDs are dense
// from 1 in first-visited order.
func runChannel(ch *field.Field, cfg Options) (*field.LabelMap, int, error) {
	raw, err := Label(ch, cfg.Threshold)
	if err != nil {
		return nil, 0, err
	}
	seeds := int(raw.MaxLabel())

	if cfg.SkipFinalize {
		return raw, seeds, nil
	}
	fin, err := cfg.Finalizer.Finalize(raw, cfg.MinRegionSize)
	if err != nil {
		return nil, 0, err
	}

	return fin, seeds, nil
}
