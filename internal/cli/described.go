package cli

import (
	"io"

	"go.uber.org/zap"

	"lookup/internal/logging"
	"lookup/internal/lookup"
)

// runDescribed resolves queries against a name/number table and reports one
// row per query. Numeric queries are shifted by offset first.
func runDescribed(w io.Writer, e *env, tbl *lookup.Table, d lookup.Describer, queries []string, offset int) error {
	log := logging.For(e.logger, logging.CategoryResolve)
	r := e.newReport(w, describedColumns(e.cfg.Output.DescriptionWidth)...)

	for _, q := range queries {
		m := tbl.Resolve(q, offset)
		if m.Found {
			log.Debug("resolved query", zap.String("query", q), zap.String("name", m.Entry.Name))
		} else {
			log.Debug("unknown query", zap.String("query", q), zap.Bool("numeric", m.Numeric))
		}

		name, number, description := m.Fields(d)
		if err := r.add(name, number, description); err != nil {
			return err
		}
	}

	logging.For(e.logger, logging.CategoryRender).Debug("rendering",
		zap.Int("rows", len(queries)), zap.Bool("simple", r.simple))
	return r.flush()
}
