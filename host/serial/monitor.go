package serial

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineFunc receives one line of firmware output without its line terminator
type LineFunc func(line string)

// Monitor reads the firmware's debug stream from r and calls emit once per
// CRLF or LF terminated line, until ctx is done or r fails.
//
// A read timeout on the port surfaces as io.EOF with no data; Monitor treats
// it as an idle line and keeps reading.
func Monitor(ctx context.Context, r io.Reader, emit LineFunc) error {
	var (
		buf  = make([]byte, 256)
		line strings.Builder
	)
	for {
		if err := ctx.Err(); err != nil {
			if line.Len() > 0 {
				emit(line.String())
			}
			return err
		}

		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			switch c {
			case '\n':
				emit(strings.TrimSuffix(line.String(), "\r"))
				line.Reset()
			default:
				line.WriteByte(c)
			}
		}

		switch {
		case err == nil, errors.Is(err, io.EOF):
			continue
		default:
			return fmt.Errorf("serial: could not read: %w", err)
		}
	}
}
