// Package gcs provides a Google Cloud Storage-backed export sink.
package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// Sink writes export files as objects in a GCS bucket.
type Sink struct {
	client *storage.Client
	bucket string
}

// NewSink creates a GCS sink. It assumes the client is authenticated
// (e.g. via GOOGLE_APPLICATION_CREDENTIALS).
func NewSink(ctx context.Context, bucketName string) (*Sink, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &Sink{
		client: client,
		bucket: bucketName,
	}, nil
}

// Put writes an export object, overwriting any previous object with
// the same name.
func (s *Sink) Put(ctx context.Context, name string, data []byte) error {
	obj := s.client.Bucket(s.bucket).Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = "text/csv"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object: %w", err)
	}
	return nil
}

// List returns the names of all export objects in the bucket.
func (s *Sink) List(ctx context.Context) ([]string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, nil)

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

// Close releases the underlying GCS client.
func (s *Sink) Close() error {
	return s.client.Close()
}
