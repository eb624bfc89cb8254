package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	vcell "github.com/starfederation/vcell-go"
	"github.com/starfederation/vcell-go/diag"
)

type layoutCmd struct{}

func (c *layoutCmd) Run(out io.Writer) error {
	info := vcell.Layout()
	name := "narrow"
	if info.Wide {
		name = "wide"
	}
	_, err := fmt.Fprintf(out, "layout: %s\nsize:   %d\nalign:  %d\nbudget: %d\n", name, info.Size, info.Align, info.Budget)
	return err
}

type dumpCmd struct {
	File   string `arg:"" type:"existingfile" help:"JSON array of cell literals."`
	Format string `enum:"text,json,cbor" default:"text" help:"Output format: text, json or cbor."`
}

func (c *dumpCmd) Run(out io.Writer) error {
	values, err := loadValues(c.File)
	if err != nil {
		return err
	}
	defer diag.Release(values)

	switch c.Format {
	case "json":
		data, err := diag.MarshalJSON(values...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case "cbor":
		data, err := diag.MarshalCBOR(values...)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		for i, v := range values {
			if _, err := fmt.Fprintf(out, "%d\t%s\n", i, v); err != nil {
				return err
			}
		}
		return nil
	}
}

type compareCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON array of cell literals."`
}

func (c *compareCmd) Run(out io.Writer) error {
	values, err := loadValues(c.File)
	if err != nil {
		return err
	}
	defer diag.Release(values)
	_, err = io.WriteString(out, equalityMatrix(values))
	return err
}

func loadValues(path string) ([]*vcell.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values, err := diag.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// equalityMatrix renders one row per cell with '=' where the cells compare
// equal and '.' where they do not.
func equalityMatrix(values []*vcell.Value) string {
	var b strings.Builder
	for i, a := range values {
		fmt.Fprintf(&b, "%2d ", i)
		for _, other := range values {
			if a.Equal(other) {
				b.WriteByte('=')
			} else {
				b.WriteByte('.')
			}
		}
		fmt.Fprintf(&b, "  %s\n", a)
	}
	return b.String()
}
