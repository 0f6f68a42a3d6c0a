package boltdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookgrid/internal/client/storage"
	"github.com/iudanet/bookgrid/internal/validation"
)

var (
	// BoltDB bucket names
	bucketOverlay  = []byte("overlay")
	bucketMetadata = []byte("metadata")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db        *bbolt.DB
	logger    *slog.Logger
	namespace string
	limits    validation.Limits
}

// Option configures Storage
type Option func(*Storage)

// WithNamespace sets the key of the overlay slot
func WithNamespace(namespace string) Option {
	return func(s *Storage) {
		if namespace != "" {
			s.namespace = namespace
		}
	}
}

// WithLogger sets the logger used to report recovered storage problems
func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLimits sets the ranges every stored edit must satisfy
func WithLimits(limits validation.Limits) Option {
	return func(s *Storage) {
		if limits.Resources > 0 && limits.Weeks > 0 {
			s.limits = limits
		}
	}
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	// Открываем BoltDB; таймаут защищает от вечного ожидания блокировки файла
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{
		db:        db,
		namespace: storage.DefaultNamespace,
		limits:    validation.DefaultLimits(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Namespace returns the key of the overlay slot
func (s *Storage) Namespace() string {
	return s.namespace
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		// Bucket для оверлея локальных правок
		if _, err := tx.CreateBucketIfNotExists(bucketOverlay); err != nil {
			return fmt.Errorf("failed to create overlay bucket: %w", err)
		}

		// Bucket для служебных данных клиента
		if _, err := tx.CreateBucketIfNotExists(bucketMetadata); err != nil {
			return fmt.Errorf("failed to create metadata bucket: %w", err)
		}

		return nil
	})
}
