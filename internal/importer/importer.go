package importer

import (
	"io"

	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

type Format string

const (
	FormatSheet Format = "sheet"
)

type Importer interface {
	Parse(r io.Reader) ([]window.Draft, error)
}
