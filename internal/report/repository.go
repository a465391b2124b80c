// Package report provides create and get-by-id semantics for citizen
// reports, backed by one append-only CSV table file.
package report

import (
	"fmt"

	"github.com/mesh-intelligence/curbside/internal/table"
	"github.com/mesh-intelligence/curbside/pkg/types"
)

// codec maps reports to and from table rows. The schema order fixes the
// CSV header: id, description.
var codec = table.Codec[types.Report]{
	Fields: []string{"id", "description"},
	Encode: func(r types.Report) table.Row {
		return table.Row{
			"id":          r.ID.String(),
			"description": r.Description,
		}
	},
	Decode: func(row table.Row) (types.Report, error) {
		id, err := types.ParseReportID(row["id"])
		if err != nil {
			return types.Report{}, err
		}
		if row["description"] == "" {
			return types.Report{}, types.ErrEmptyDescription
		}
		return types.Report{ID: id, Description: row["description"]}, nil
	},
}

// Repository persists reports in the table file at path.
type Repository struct {
	path string
}

// NewRepository returns a repository backed by the table file at path.
// The file is created lazily on the first successful Create.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the table file the repository writes to.
func (r *Repository) Path() string {
	return r.path
}

// Create assigns a fresh identifier to newReport, appends the record, and
// returns it. A failed append discards the generated identifier; there is
// no retry and no rollback.
func (r *Repository) Create(newReport types.NewReport) (types.Report, error) {
	rep := types.Report{
		ID:          types.NewReportID(),
		Description: newReport.Description,
	}
	if err := table.AppendRow(r.path, codec, rep); err != nil {
		return types.Report{}, fmt.Errorf("creating report: %w", err)
	}
	return rep, nil
}

// GetByID re-parses the whole table file and returns the first record with
// the given identifier. Returns types.ErrNotFound when no record matches,
// including when the file does not exist yet.
func (r *Repository) GetByID(id types.ReportID) (types.Report, error) {
	records, err := table.ReadRows(r.path, codec)
	if err != nil {
		return types.Report{}, fmt.Errorf("reading reports from %q: %w", r.path, err)
	}
	for _, rep := range records {
		if rep.ID == id {
			return rep, nil
		}
	}
	return types.Report{}, fmt.Errorf("report %q: %w", id, types.ErrNotFound)
}
