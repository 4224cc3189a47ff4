package exercises

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ReadCatalog reads exercises from ';' separated records:
// NAME;MUSCLE_GROUP;EQUIPMENT;DESCRIPTION
// Lines starting with '#' are ignored.
func ReadCatalog(catalogCsvReader *csv.Reader) ([]Exercise, error) {
	catalogCsvReader.Comma = ';'
	catalogCsvReader.Comment = '#'

	var exercises []Exercise
	seen := make(map[string]struct{})
	for {
		record, err := catalogCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 4 {
			return nil, fmt.Errorf("record [%s] does not have 4 elements", record)
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("record [%s] has an empty name", record)
		}
		if _, ok := seen[strings.ToLower(name)]; ok {
			return nil, fmt.Errorf("duplicate exercise [%s]", name)
		}
		seen[strings.ToLower(name)] = struct{}{}

		exercises = append(exercises, Exercise{
			Name:        name,
			MuscleGroup: strings.ToLower(strings.TrimSpace(record[1])),
			Equipment:   strings.TrimSpace(record[2]),
			Description: strings.TrimSpace(record[3]),
		})
	}

	log.Debugf("exercises CSV read %d exercises", len(exercises))

	return exercises, nil
}

func ReadCatalogFile(path string) ([]Exercise, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exercises catalog: %w", err)
	}
	defer f.Close()

	return ReadCatalog(csv.NewReader(f))
}
