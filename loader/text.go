package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText parses the plain-text format from r and validates the result.
//
// Errors: ErrMalformed (with the line number), ErrItemCount, ErrInvalidItem,
// ErrInvalidCapacity, or the read error of r.
func ReadText(r io.Reader) (*Problem, error) {
	var (
		sc     = bufio.NewScanner(r)
		p      *Problem
		want   int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformed, lineNo, len(fields))
		}

		if p == nil {
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: item count %q", ErrMalformed, lineNo, fields[0])
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: negative count %d", ErrItemCount, n)
			}
			capacity, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: capacity %q", ErrMalformed, lineNo, fields[1])
			}
			want = n
			p = &Problem{Capacity: capacity, Items: make([]Item, 0, n)}
			continue
		}
		if len(p.Items) == want {
			continue // trailing lines after the announced items
		}

		value, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: value %q", ErrMalformed, lineNo, fields[0])
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q", ErrMalformed, lineNo, fields[1])
		}
		p.Items = append(p.Items, Item{Weight: weight, Value: value})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if p == nil {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if len(p.Items) != want {
		return nil, fmt.Errorf("%w: header announces %d items, found %d", ErrItemCount, want, len(p.Items))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}
