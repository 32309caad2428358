package manifest

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	luckytemplate "github.com/mdwagner/lucky-template"
)

type BuiltInGeneratorType = string

const (
	// UUIDGeneratorType writes a freshly generated UUID followed by a newline
	UUIDGeneratorType BuiltInGeneratorType = "uuid"
	// TimestampGeneratorType writes the current time; args: "format" (Go
	// layout, default RFC3339)
	TimestampGeneratorType BuiltInGeneratorType = "timestamp"
	// LinesGeneratorType writes each arg value as its own line, ordered by
	// arg key, each with a trailing newline
	LinesGeneratorType BuiltInGeneratorType = "lines"
)

// RegisterBuiltins registers all built-in generators by default
// or only the specific ones if keys are provided
func RegisterBuiltins(names ...BuiltInGeneratorType) {
	if len(names) == 0 {
		// Include all built-in generators here when adding implementations
		names = append(names, UUIDGeneratorType, TimestampGeneratorType, LinesGeneratorType)
	}

	for _, key := range names {
		switch key {
		case UUIDGeneratorType:
			RegisterUUID()
		case TimestampGeneratorType:
			RegisterTimestamp()
		case LinesGeneratorType:
			RegisterLines()
		}
	}
}

func RegisterUUID() {
	Register(UUIDGeneratorType, func(args map[string]string) (luckytemplate.Source, error) {
		return luckytemplate.SourceFunc(func(w io.Writer) error {
			_, err := fmt.Fprintln(w, uuid.NewString())
			return err
		}), nil
	})
}

func RegisterTimestamp() {
	Register(TimestampGeneratorType, func(args map[string]string) (luckytemplate.Source, error) {
		layout := time.RFC3339
		if f, ok := args["format"]; ok {
			layout = f
		}
		return luckytemplate.SourceFunc(func(w io.Writer) error {
			_, err := fmt.Fprintln(w, time.Now().Format(layout))
			return err
		}), nil
	})
}

func RegisterLines() {
	Register(LinesGeneratorType, func(args map[string]string) (luckytemplate.Source, error) {
		// Args come in as a map; keys only fix the line order
		keys := make([]string, 0, len(args))
		for k := range args {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return luckytemplate.SourceFunc(func(w io.Writer) error {
			for _, k := range keys {
				if _, err := fmt.Fprintln(w, args[k]); err != nil {
					return err
				}
			}
			return nil
		}), nil
	})
}
