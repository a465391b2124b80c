package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/curbside/internal/table"
	"github.com/mesh-intelligence/curbside/pkg/types"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "reports.csv"))
}

func TestCreateReturnsPersistedReport(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(types.NewReport{Description: "There's a pothole!"})
	require.NoError(t, err)

	assert.Equal(t, "There's a pothole!", created.Description)
	_, err = types.ParseReportID(created.ID.String())
	assert.NoError(t, err)
}

func TestCreateThenGetByIDRoundTrips(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(types.NewReport{Description: "Broken streetlight on 5th"})
	require.NoError(t, err)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateWritesHeaderOnce(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Create(types.NewReport{Description: "first"})
	require.NoError(t, err)
	_, err = repo.Create(types.NewReport{Description: "second"})
	require.NoError(t, err)

	content, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Regexp(t, `^id,description\n[^\n]+,first\n[^\n]+,second$`, string(content))
}

func TestGetByIDOnMissingStoreReturnsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(types.NewReportID())

	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetByIDOnEmptyStoreReturnsNotFound(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, os.WriteFile(repo.Path(), nil, 0o644))

	_, err := repo.GetByID(types.NewReportID())

	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetByIDUnknownIDAmongRecords(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Create(types.NewReport{Description: "existing"})
	require.NoError(t, err)

	_, err = repo.GetByID(types.NewReportID())
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetByIDWrapsDecodeFailures(t *testing.T) {
	repo := newTestRepository(t)
	content := "id,description\nnot-a-uuid,hello"
	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))

	_, err := repo.GetByID(types.NewReportID())

	require.Error(t, err)
	assert.NotErrorIs(t, err, types.ErrNotFound)
	var decodeErr *table.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
