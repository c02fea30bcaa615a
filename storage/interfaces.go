package storage

import "github.com/chrisformoso-ca/rvezy-calgary/models"

// RecordSource streams input records one at a time. Next returns io.EOF
// once the source is exhausted.
type RecordSource interface {
	Next() (*models.RawRecord, error)
	Close() error
}
