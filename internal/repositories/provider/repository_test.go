package provider

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/pkg/models"
)

// captureDB records the last query and args handed to the database facade so
// tests can assert the SQL the builder produced.
type captureDB struct {
	query string
	args  []any
}

func (c *captureDB) Get(_ any, _ string, _ ...any) error { return nil }

func (c *captureDB) GetContext(_ context.Context, _ any, query string, args ...any) error {
	c.query = query
	c.args = args
	return nil
}

func (c *captureDB) Select(_ any, _ string, _ ...any) error { return nil }

func (c *captureDB) SelectContext(_ context.Context, _ any, query string, args ...any) error {
	c.query = query
	c.args = args
	return nil
}

func (c *captureDB) Queryx(_ string, _ ...any) (*sqlx.Rows, error) { return nil, nil }
func (c *captureDB) QueryxContext(_ context.Context, _ string, _ ...any) (*sqlx.Rows, error) {
	return nil, nil
}
func (c *captureDB) QueryRowxContext(_ context.Context, _ string, _ ...any) *sqlx.Row { return nil }
func (c *captureDB) ExecContext(_ context.Context, _ string, _ ...any) (sql.Result, error) {
	return nil, nil
}
func (c *captureDB) Rebind(query string) string          { return query }
func (c *captureDB) Ping() error                         { return nil }
func (c *captureDB) PingContext(_ context.Context) error { return nil }
func (c *captureDB) SetConnMaxLifetime(_ time.Duration)  {}
func (c *captureDB) SetMaxIdleConns(_ int)               {}
func (c *captureDB) SetMaxOpenConns(_ int)               {}
func (c *captureDB) Stats() sql.DBStats                  { return sql.DBStats{} }
func (c *captureDB) Close() error                        { return nil }
func (c *captureDB) Unsafe() *sqlx.DB                    { return nil }

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestListEligibleNoNarrowing(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, testLogger())

	_, err := repo.ListEligible(context.Background(), models.PoolScope{Kind: models.LocationScopeAll})
	require.NoError(t, err)

	assert.Contains(t, db.query, "FROM providers")
	assert.Contains(t, db.query, "is_verified = $1")
	assert.Contains(t, db.query, "LOWER(status) IN ($2, $3)")
	assert.NotContains(t, db.query, "city =")
	assert.NotContains(t, db.query, "region =")
	assert.Contains(t, db.query, "ORDER BY created_at ASC")
	assert.Equal(t, []any{true, "active", "verified"}, db.args)
}

func TestListEligibleSameCity(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, testLogger())

	_, err := repo.ListEligible(context.Background(), models.PoolScope{
		Kind: models.LocationScopeSameCity,
		City: "Santiago",
	})
	require.NoError(t, err)

	assert.Contains(t, db.query, "city = $4")
	assert.NotContains(t, db.query, "region =")
	assert.Equal(t, []any{true, "active", "verified", "Santiago"}, db.args)
}

func TestListEligibleSameCityEmptyCityDisablesNarrowing(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, testLogger())

	_, err := repo.ListEligible(context.Background(), models.PoolScope{
		Kind: models.LocationScopeSameCity,
	})
	require.NoError(t, err)

	assert.NotContains(t, db.query, "city =")
	assert.Equal(t, []any{true, "active", "verified"}, db.args)
}

func TestListEligibleSameRegionInclusiveOr(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, testLogger())

	_, err := repo.ListEligible(context.Background(), models.PoolScope{
		Kind:   models.LocationScopeSameRegion,
		City:   "Viña del Mar",
		Region: "Valparaíso",
	})
	require.NoError(t, err)

	// Region narrowing is inclusive: a same-city provider must survive a
	// widened filter, so the city match ORs with the region match
	assert.Contains(t, db.query, "(city = $4 OR region = $5)")
	assert.Equal(t, []any{true, "active", "verified", "Viña del Mar", "Valparaíso"}, db.args)
}

func TestListEligibleSameRegionEmptyCityOmitsCityMatch(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, testLogger())

	_, err := repo.ListEligible(context.Background(), models.PoolScope{
		Kind:   models.LocationScopeSameRegion,
		Region: "Valparaíso",
	})
	require.NoError(t, err)

	// A city = '' comparison would match providers whose city column is the
	// empty-string default regardless of their region
	assert.NotContains(t, db.query, "city =")
	assert.Contains(t, db.query, "region = $4")
	assert.Equal(t, []any{true, "active", "verified", "Valparaíso"}, db.args)
}

func TestListEligibleSameRegionEmptyRegionDisablesNarrowing(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, testLogger())

	_, err := repo.ListEligible(context.Background(), models.PoolScope{
		Kind: models.LocationScopeSameRegion,
		City: "Santiago",
	})
	require.NoError(t, err)

	assert.NotContains(t, db.query, "city =")
	assert.NotContains(t, db.query, "region =")
	assert.Equal(t, []any{true, "active", "verified"}, db.args)
}

func TestCountsQuery(t *testing.T) {
	db := &captureDB{}
	repo := NewRepository(db, testLogger())

	_, err := repo.Counts(context.Background())
	require.NoError(t, err)

	assert.Contains(t, db.query, "COUNT(*) AS total")
	assert.Contains(t, db.query, "FILTER (WHERE is_verified) AS verified")
	assert.Contains(t, db.query, "AS active_verified")
	assert.Empty(t, db.args)
}
