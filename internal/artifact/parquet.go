package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
)

// schemaFor builds a parquet schema with one optional leaf column per Frame
// column, so every cell's null bitmap round-trips through definition levels
// instead of a sentinel value. parquet.Group is a map, so the Frame's column
// order is not carried into the schema.
func schemaFor(f *Frame) *parquet.Schema {
	group := parquet.Group{}
	for _, name := range f.ColumnNames() {
		col := f.MustColumn(name)
		var leaf parquet.Node
		switch col.Type {
		case CellString:
			leaf = parquet.String()
		case CellInt:
			leaf = parquet.Int(64)
		case CellFloat:
			leaf = parquet.Leaf(parquet.DoubleType)
		case CellTime:
			leaf = parquet.String() // stored as YYYY-MM-DD to keep the reader dependency-free
		default:
			leaf = parquet.String()
		}
		group[name] = parquet.Optional(leaf)
	}
	return parquet.NewSchema("row", group)
}

// WriteParquet serializes f to path, creating parent directories and
// overwriting the destination atomically (write to a temp file, then
// rename), matching the "overwritten atomically" storage contract.
func WriteParquet(path string, f *Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("artifact: mkdir for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("artifact: create %s: %w", tmp, err)
	}

	schema := schemaFor(f)
	names := f.ColumnNames()
	writer := parquet.NewGenericWriter[map[string]any](out, schema)

	for i := 0; i < f.NRows(); i++ {
		row := make(map[string]any, len(names))
		for _, name := range names {
			col := f.MustColumn(name)
			if col.Null[i] {
				continue
			}
			switch col.Type {
			case CellString:
				row[name] = col.Strings[i]
			case CellInt:
				row[name] = col.Ints[i]
			case CellFloat:
				row[name] = col.Floats[i]
			case CellTime:
				row[name] = col.Times[i].Format("2006-01-02")
			}
		}
		if _, err := writer.Write([]map[string]any{row}); err != nil {
			out.Close()
			os.Remove(tmp)
			return fmt.Errorf("artifact: write row %d to %s: %w", i, tmp, err)
		}
	}

	if err := writer.Close(); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("artifact: close writer for %s: %w", tmp, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("artifact: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("artifact: rename %s -> %s: %w", tmp, path, err)
	}
	return nil
}

// ReadParquet loads the frame previously written at path, reconstructing
// column types from the file's own schema.
func ReadParquet(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("artifact: stat %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("artifact: open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[map[string]any](f, pf.Schema())
	defer reader.Close()

	nrows := int(pf.NumRows())
	rows := make([]map[string]any, nrows)
	for i := range rows {
		rows[i] = make(map[string]any)
	}
	n, err := reader.Read(rows)
	if err != nil && n < nrows {
		return nil, fmt.Errorf("artifact: read %s: %w", path, err)
	}

	colTypes := make(map[string]CellType)
	for _, c := range pf.Schema().Fields() {
		colTypes[c.Name()] = inferCellType(c)
	}

	frame := NewFrame(nrows)
	for name, ct := range colTypes {
		switch ct {
		case CellString:
			vals := make([]string, nrows)
			null := make([]bool, nrows)
			for i, r := range rows {
				if v, ok := r[name].(string); ok {
					vals[i] = v
				} else {
					null[i] = true
				}
			}
			frame.AddColumn(NewStringColumn(name, vals))
			frame.MustColumn(name).Null = null
		case CellInt:
			vals := make([]int64, nrows)
			null := make([]bool, nrows)
			for i, r := range rows {
				switch v := r[name].(type) {
				case int64:
					vals[i] = v
				default:
					null[i] = true
				}
			}
			frame.AddColumn(NewIntColumn(name, vals, null))
		case CellFloat:
			vals := make([]float64, nrows)
			null := make([]bool, nrows)
			for i, r := range rows {
				switch v := r[name].(type) {
				case float64:
					vals[i] = v
				default:
					null[i] = true
				}
			}
			frame.AddColumn(NewFloatColumn(name, vals, null))
		case CellTime:
			vals := make([]time.Time, nrows)
			null := make([]bool, nrows)
			for i, r := range rows {
				s, ok := r[name].(string)
				if !ok {
					null[i] = true
					continue
				}
				t, err := time.Parse("2006-01-02", s)
				if err != nil {
					null[i] = true
					continue
				}
				vals[i] = t
			}
			frame.AddColumn(NewTimeColumn(name, vals, null))
		}
	}
	return frame, nil
}

func inferCellType(n parquet.Node) CellType {
	switch n.Type().Kind() {
	case parquet.Int32, parquet.Int64:
		return CellInt
	case parquet.Float, parquet.Double:
		return CellFloat
	default:
		return CellString
	}
}
