package mysql

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/go-sql-driver/mysql"
	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

const (
	errCodeDuplicateEntry        = 1062
	errCodeNoReferencedRow       = 1452
	errCodeNoReferencedRowLegacy = 1216
)

type Repository struct {
	db         *sql.DB
	dimensions int
}

// New builds a Repository whose stored vectors have the given number of components.
func New(db *sql.DB, dimensions int) *Repository {
	return &Repository{db: db, dimensions: dimensions}
}

// mapWriteError converts MySQL constraint violations into domain errors.
func mapWriteError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return err
	}
	switch mysqlErr.Number {
	case errCodeDuplicateEntry:
		return fmt.Errorf("%w: %s", domain.ErrConflict, mysqlErr.Message)
	case errCodeNoReferencedRow, errCodeNoReferencedRowLegacy:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, mysqlErr.Message)
	default:
		return err
	}
}

func closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "closing rows iterator", "error", err)
	}
}

func (r *Repository) encodeVector(vector []float32) ([]byte, error) {
	if err := domain.ValidateVector(vector, r.dimensions); err != nil {
		return nil, err
	}
	return float32SliceToBytes(vector), nil
}

func (r *Repository) decodeVector(raw []byte) ([]float32, error) {
	vector, err := bytesToFloat32Slice(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDimensionMismatch, err)
	}
	if len(vector) != r.dimensions {
		return nil, fmt.Errorf("%w: stored vector has %d components, expected %d",
			domain.ErrDimensionMismatch, len(vector), r.dimensions)
	}
	return vector, nil
}

// Helper functions for binary vector serialization

func float32SliceToBytes(floats []float32) []byte {
	bytes := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes
}

func bytesToFloat32Slice(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("invalid byte length for float32 slice: %d", len(bytes))
	}
	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return floats, nil
}
