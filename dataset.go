package simspace

import (
	"errors"
	"fmt"
	"io"
)

type datasetOptions struct {
	logger *Logger
}

// DatasetOption configures the dataset I/O driver.
type DatasetOption func(*datasetOptions)

// WithLogger sets the logger used to report parse failures and
// dataset-level outcomes. Defaults to a no-op logger.
func WithLogger(l *Logger) DatasetOption {
	return func(o *datasetOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyDatasetOptions(opts []DatasetOption) datasetOptions {
	o := datasetOptions{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ReadDataset materializes a collection of objects and their external
// identifiers from path by repeatedly calling the space's record-read
// and object-construction operations.
//
// Objects are assigned sequential IDs starting at 0. A positive
// maxObjects bounds the number of records consumed; the remainder of
// the source stays unread. maxObjects <= 0 means unbounded.
//
// The first malformed record aborts the load and is propagated to the
// caller as an *ErrParse.
func ReadDataset[T Float](s Space[T], path string, maxObjects int, opts ...DatasetOption) ([]*Object, []string, error) {
	o := applyDatasetOptions(opts)
	log := o.logger.WithSpace(s.String()).WithPath(path)

	cur, err := s.OpenReadHeader(path)
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close()

	var (
		dataset   []*Object
		externIDs []string
	)

	for maxObjects <= 0 || len(dataset) < maxObjects {
		rec, err := s.ReadNextRecord(cur)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The record never made it into rec; recover the offending
			// line from the parse error.
			content := rec.Text
			var pe *ErrParse
			if errors.As(err, &pe) {
				content = pe.Content
			}

			log.LogParseFailure(cur.Line(), content, err)
			log.LogDatasetRead(len(dataset), err)

			return nil, nil, err
		}

		obj, err := s.CreateObjFromString(ID(len(dataset)), rec.Label, rec.Text, cur)
		if err != nil {
			log.LogParseFailure(cur.Line(), rec.Text, err)
			log.LogDatasetRead(len(dataset), err)

			return nil, nil, err
		}

		dataset = append(dataset, obj)
		externIDs = append(externIDs, rec.ExternID)
	}

	log.LogDatasetRead(len(dataset), nil)

	return dataset, externIDs, nil
}

// WriteDataset persists a collection of objects to path, one record
// per object. externIDs must either be empty or match the dataset in
// length. A positive maxObjects bounds the number of objects written.
func WriteDataset[T Float](s Space[T], dataset []*Object, externIDs []string, path string, maxObjects int, opts ...DatasetOption) error {
	o := applyDatasetOptions(opts)
	log := o.logger.WithSpace(s.String()).WithPath(path)

	if len(externIDs) > 0 && len(externIDs) != len(dataset) {
		return fmt.Errorf("external ID count %d does not match dataset size %d", len(externIDs), len(dataset))
	}

	cur, err := s.OpenWriteHeader(dataset, path)
	if err != nil {
		return err
	}

	n := len(dataset)
	if maxObjects > 0 && maxObjects < n {
		n = maxObjects
	}

	for i := range n {
		externID := ""
		if len(externIDs) > 0 {
			externID = externIDs[i]
		}

		if err := s.WriteNextRecord(dataset[i], externID, cur); err != nil {
			cur.Close()
			log.LogDatasetWrite(i, err)

			return err
		}
	}

	if err := cur.Close(); err != nil {
		log.LogDatasetWrite(n, err)

		return err
	}

	log.LogDatasetWrite(n, nil)

	return nil
}
