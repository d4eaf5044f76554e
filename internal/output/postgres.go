package output

import (
	"context"
	"fmt"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flushBatchSize = 1000

var recordColumns = []string{
	"restaurant_id", "item_name", "category", "date", "day_of_week",
	"prepared_quantity", "sold_quantity", "wasted_quantity", "waste_percentage",
	"meal_period", "weather", "special_event", "revenue",
	"potential_revenue_loss", "notes",
}

// PostgresWriter buffers generated records and bulk-loads them with CopyFrom.
type PostgresWriter struct {
	pool  *pgxpool.Pool
	table string
	buf   []*models.ObservationRecord
}

func NewPostgresWriter(ctx context.Context, config *models.DatabaseConfig) (*PostgresWriter, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	table := config.Table
	if table == "" {
		table = "waste_records"
	}

	w := &PostgresWriter{pool: pool, table: table}
	if err := w.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return w, nil
}

func (w *PostgresWriter) ensureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            restaurant_id TEXT NOT NULL,
            item_name TEXT NOT NULL,
            category TEXT NOT NULL,
            date DATE NOT NULL,
            day_of_week TEXT NOT NULL,
            prepared_quantity INT NOT NULL,
            sold_quantity INT NOT NULL,
            wasted_quantity INT NOT NULL,
            waste_percentage DOUBLE PRECISION NOT NULL,
            meal_period TEXT NOT NULL,
            weather TEXT NOT NULL,
            special_event BOOLEAN NOT NULL,
            revenue DOUBLE PRECISION NOT NULL,
            potential_revenue_loss DOUBLE PRECISION NOT NULL,
            notes TEXT
        )
    `, w.table)

	if _, err := w.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", w.table, err)
	}
	return nil
}

func (w *PostgresWriter) Write(record *models.ObservationRecord) error {
	w.buf = append(w.buf, record)
	if len(w.buf) >= flushBatchSize {
		return w.flush(context.Background())
	}
	return nil
}

func (w *PostgresWriter) flush(ctx context.Context) error {
	if len(w.buf) == 0 {
		return nil
	}

	records := w.buf
	_, err := w.pool.CopyFrom(
		ctx,
		pgx.Identifier{w.table},
		recordColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{
				r.RestaurantID,
				r.ItemName,
				r.Category,
				r.Date,
				r.DayOfWeek,
				r.PreparedQuantity,
				r.SoldQuantity,
				r.WastedQuantity,
				r.WastePercentage,
				r.MealPeriod,
				r.Weather,
				r.SpecialEvent,
				r.Revenue,
				r.PotentialRevenueLoss,
				r.Notes,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy records into %s: %w", w.table, err)
	}

	w.buf = w.buf[:0]
	return nil
}

func (w *PostgresWriter) Close() error {
	err := w.flush(context.Background())
	w.pool.Close()
	return err
}
