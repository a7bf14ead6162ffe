package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/scatter"
	"github.com/midbel/slices"
)

// DefaultPath is the location of the dataset shipped with the chart.
const DefaultPath = "assets/data/data.csv"

const (
	colID    = "id"
	colState = "state"
	colAbbr  = "abbr"
)

var numeric = []scatter.Field{
	scatter.Poverty,
	scatter.Age,
	scatter.Income,
	scatter.Obesity,
	scatter.Smokes,
	scatter.Healthcare,
}

type Options struct {
	// Strict rejects datasets with values that can not be converted instead
	// of replacing them with NaN.
	Strict bool
}

type Dataset struct {
	Records []scatter.Record
	Issues  []Issue
}

func (d Dataset) Len() int {
	return len(d.Records)
}

func (d Dataset) Values(f scatter.Field) []float64 {
	list := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		list = append(list, r.Value(f))
	}
	return list
}

// Load reads the dataset found at location. location is either a path on
// the local filesystem or a file, http or https url.
func Load(ctx context.Context, location string, opts Options) (Dataset, error) {
	r, err := readFrom(ctx, location)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w %s: %s", ErrFetch, location, err)
	}
	defer r.Close()

	dat, err := Parse(r, opts)
	if err != nil {
		var he HeaderError
		if errors.As(err, &he) {
			he.File = location
			err = he
		}
		return dat, err
	}
	return dat, nil
}

func readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			res.Body.Close()
			return nil, fmt.Errorf("request does not end with success result code (%d)", res.StatusCode)
		}
		return res.Body, nil
	case "file":
		return os.Open(u.Path)
	case "":
		return os.Open(location)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

// Parse reads comma separated records. The first row gives the name of
// the columns; columns are matched by name and unknown columns are
// ignored.
func Parse(r io.Reader, opts Options) (Dataset, error) {
	var (
		dat Dataset
		rs  = csv.NewReader(r)
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	head, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return dat, HeaderError{Column: colState}
		}
		return dat, err
	}
	index, err := indexHeader(head)
	if err != nil {
		return dat, err
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return dat, err
		}
		line, _ := rs.FieldPos(0)
		rec, issues := parseRecord(row, index, line)
		if len(issues) > 0 && opts.Strict {
			return dat, slices.Fst(issues)
		}
		dat.Issues = append(dat.Issues, issues...)
		dat.Records = append(dat.Records, rec)
	}
	return dat, nil
}

func indexHeader(head []string) (map[string]int, error) {
	index := make(map[string]int)
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := index[h]; ok {
			continue
		}
		index[h] = i
	}
	required := []string{colState, colAbbr}
	for _, f := range numeric {
		required = append(required, f.String())
	}
	for _, c := range required {
		if _, ok := index[c]; !ok {
			return nil, HeaderError{Column: c}
		}
	}
	return index, nil
}

func parseRecord(row []string, index map[string]int, line int) (scatter.Record, []Issue) {
	var (
		rec    scatter.Record
		issues []Issue
	)
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	rec.ID = get(colID)
	rec.State = get(colState)
	rec.Abbr = get(colAbbr)
	for _, c := range []string{colState, colAbbr} {
		if get(c) == "" {
			issues = append(issues, Issue{Line: line, Column: c})
		}
	}
	for _, f := range numeric {
		str := get(f.String())
		v, err := strconv.ParseFloat(str, 64)
		if err != nil || !validValue(v) {
			v = math.NaN()
			issues = append(issues, Issue{Line: line, Column: f.String(), Value: str})
		}
		setValue(&rec, f, v)
	}
	return rec, issues
}

// validValue rejects the special values and the negative numbers accepted
// by strconv.ParseFloat.
func validValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func setValue(rec *scatter.Record, f scatter.Field, v float64) {
	switch f {
	case scatter.Poverty:
		rec.Poverty = v
	case scatter.Age:
		rec.Age = v
	case scatter.Income:
		rec.Income = v
	case scatter.Obesity:
		rec.Obesity = v
	case scatter.Smokes:
		rec.Smokes = v
	case scatter.Healthcare:
		rec.Healthcare = v
	}
}
