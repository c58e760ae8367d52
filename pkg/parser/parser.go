package parser

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/model"
)

const separator = ","

// Result is the outcome of a successful parse.
type Result struct {
	Header  []string
	Videos  []model.VideoRecord
	Skipped []*model.MalformedRowError
}

// Parse turns data file text into video records.
// Values are split on commas as-is, quoting and escaping are not supported.
// Rows with a field count different from the header are skipped and reported in Result.Skipped.
func Parse(text string) (*Result, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, model.ErrNoDataRows
	}

	header := splitLine(lines[0])
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	result := &Result{
		Header: header,
		Videos: make([]model.VideoRecord, 0, len(lines)-1),
	}

	for i, line := range lines[1:] {
		values := splitLine(line)
		if len(values) != len(header) {
			malformed := &model.MalformedRowError{
				Line:     i + 2,
				Expected: len(header),
				Got:      len(values),
				Raw:      strings.TrimRight(line, "\r"),
			}

			log.Warn(malformed.Error())
			result.Skipped = append(result.Skipped, malformed)
			continue
		}

		record := model.VideoRecord{}
		for idx, name := range header {
			record.Set(name, values[idx])
		}

		result.Videos = append(result.Videos, record)
	}

	log.Debugf("parsed %d videos from CSV (%d rows skipped)", len(result.Videos), len(result.Skipped))
	return result, nil
}

func splitLine(line string) []string {
	fields := strings.Split(line, separator)
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

func checkHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, ok := seen[name]; ok {
			return errors.Wrapf(model.ErrDuplicateHeader, "column %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
