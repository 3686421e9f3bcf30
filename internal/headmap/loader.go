package headmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// readRows splits every physical line on commas, calling fn with the
// 1-based line number. Blank lines are rows too.
func readRows(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if err := fn(line, strings.Split(text, ",")); err != nil {
			return &LoadError{Line: line, Wrapped: err}
		}
	}
	if err := sc.Err(); err != nil {
		return &LoadError{Line: line + 1, Wrapped: err}
	}
	return nil
}

// parseField parses one finite float; NaN and infinities are rejected.
func parseField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParseValue, s)
	}
	return v, nil
}

// ReadVertices parses a shape file: one "x,y,z" row per vertex.
func ReadVertices(r io.Reader) ([]Vertex, error) {
	verts := make([]Vertex, 0)
	err := readRows(r, func(line int, fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("%w: expected 3, got %d", ErrFieldCount, len(fields))
		}
		var xyz [3]float64
		for i, f := range fields {
			v, err := parseField(f)
			if err != nil {
				return err
			}
			xyz[i] = v
		}
		verts = append(verts, Vertex{xyz[0], xyz[1], xyz[2]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("read %d vertices", len(verts))
	return verts, nil
}

// ReadSeries parses a data file: one row of values per vertex. The last
// field of each row is dropped.
func ReadSeries(r io.Reader) ([]Series, error) {
	series := make([]Series, 0)
	dropped := 0
	err := readRows(r, func(line int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("%w: expected at least 2, got %d", ErrFieldCount, len(fields))
		}
		last := fields[len(fields)-1]
		if strings.TrimSpace(last) != "" {
			dropped++
		}
		fields = fields[:len(fields)-1]

		if len(series) > 0 && len(fields) != len(series[0]) {
			return fmt.Errorf("%w: expected %d, got %d", ErrSeriesLength, len(series[0]), len(fields))
		}
		s := make(Series, len(fields))
		for i, f := range fields {
			v, err := parseField(f)
			if err != nil {
				return err
			}
			s[i] = v
		}
		series = append(series, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		log.Warnf("dropped a non-empty trailing field on %d data rows", dropped)
	}
	log.Debugf("read %d series", len(series))
	return series, nil
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return zero, withPath(err, path)
	}
	return out, nil
}

// Load reads the shape and data files and builds a cloud in sc.
func Load(sc Scene, shapePath, dataPath string, opts Options) (*Cloud, error) {
	verts, err := readFile(shapePath, ReadVertices)
	if err != nil {
		return nil, err
	}
	series, err := readFile(dataPath, ReadSeries)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"shape": shapePath,
		"data":  dataPath,
	}).Infof("loaded %d vertices", len(verts))
	return Build(sc, verts, series, opts)
}
