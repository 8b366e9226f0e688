package frontend

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/vmihailenco/msgpack"
	"gopkg.in/yaml.v2"
)

// Output formats understood by Encode.
const (
	Text    = "text"
	JSON    = "json"
	YAML    = "yaml"
	CSV     = "csv"
	MsgPack = "msgpack"
)

type UnknownOutput string

func (msg UnknownOutput) Error() string {
	return fmt.Sprintf("%s: Unknown output format, expected one of text, json, yaml, csv, msgpack", string(msg))
}

// ValidOutput reports whether format is supported.
func ValidOutput(format string) bool {
	switch strings.ToLower(format) {
	case Text, JSON, YAML, CSV, MsgPack:
		return true
	}
	return false
}

// EncodeHolidays writes holidays to w in the requested format.
func EncodeHolidays(w io.Writer, format string, holidays []HolidayResponse) error {
	switch strings.ToLower(format) {
	case Text:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, h := range holidays {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Date, h.Weekday, h.Name)
		}
		return tw.Flush()
	case CSV:
		return gocsv.Marshal(&holidays, w)
	default:
		return encode(w, format, holidays)
	}
}

// EncodeCheck writes a check result to w in the requested format.
func EncodeCheck(w io.Writer, format string, check CheckResponse) error {
	switch strings.ToLower(format) {
	case Text:
		if !check.Holiday {
			_, err := fmt.Fprintf(w, "%s: not a holiday\n", check.Date)
			return err
		}
		_, err := fmt.Fprintf(w, "%s: %s\n", check.Date, strings.Join(check.Holidays, ", "))
		return err
	case CSV:
		rows := []struct {
			Date    string `csv:"date"`
			Holiday bool   `csv:"holiday"`
			Names   string `csv:"holidays"`
		}{{check.Date, check.Holiday, strings.Join(check.Holidays, ";")}}
		return gocsv.Marshal(&rows, w)
	default:
		return encode(w, format, check)
	}
}

func encode(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		buf, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(v)
	default:
		return UnknownOutput(format)
	}
}
