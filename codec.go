package fileio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	fileioerrors "github.com/poziel/fileio/errors"
)

// jsonIndent is the indentation WriteJSON emits, four spaces.
const jsonIndent = "    "

// ReadJSON decodes the file content as JSON into out. Content that is not
// valid JSON reports ErrParse.
func (f *File) ReadJSON(out any) error {
	data, err := f.readAll("readJSON")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return f.opError("readJSON", fileioerrors.ErrParse, err)
	}
	return nil
}

// WriteJSON encodes v as indented JSON and replaces the file content with
// it. Values that cannot be encoded report ErrSerialize.
func (f *File) WriteJSON(v any) error {
	data, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return f.opError("writeJSON", fileioerrors.ErrSerialize, err)
	}
	return f.writeAll("writeJSON", data)
}

// ReadYAML decodes the file content as YAML into out. Content that is not
// valid YAML reports ErrParse.
func (f *File) ReadYAML(out any) error {
	data, err := f.readAll("readYAML")
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return f.opError("readYAML", fileioerrors.ErrParse, err)
	}
	return nil
}

// WriteYAML encodes v as YAML and replaces the file content with it.
// Values that cannot be encoded report ErrSerialize.
func (f *File) WriteYAML(v any) error {
	data, err := marshalYAML(v)
	if err != nil {
		return f.opError("writeYAML", fileioerrors.ErrSerialize, err)
	}
	return f.writeAll("writeYAML", data)
}

// marshalYAML encodes v, converting the panic yaml.Marshal raises for
// kinds it cannot represent (channels, funcs) into an ordinary error.
func marshalYAML(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	return yaml.Marshal(v)
}

// ReadCSV returns every record in the file. Records may carry differing
// field counts; an empty file yields an empty, non-nil slice.
func (f *File) ReadCSV() ([][]string, error) {
	file, err := f.opts.fsys.Open(f.path)
	if err != nil {
		return nil, f.fsError("readCSV", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, f.opError("readCSV", fileioerrors.ErrParse, err)
	}
	if records == nil {
		records = [][]string{}
	}
	return records, nil
}

// WriteCSV writes rows as CSV records, replacing the file content. Rows of
// differing lengths are written as they are and round-trip through ReadCSV
// unchanged, with one exception: a row holding a single empty field renders
// as a blank line, which ReadCSV skips.
func (f *File) WriteCSV(rows [][]string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return f.opError("writeCSV", fileioerrors.ErrSerialize, err)
	}
	return f.writeAll("writeCSV", buf.Bytes())
}
