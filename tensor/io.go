package tensor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads a tensor from the named file. See Read for the format.
func Load(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tensor file: %w", err)
	}

	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// MaxReadElements bounds the element count accepted from a tensor header.
const MaxReadElements = 1 << 28

// Read parses a tensor: three whitespace separated integers nx ny nz followed
// by nx*ny*nz floating point values in row-major order.
func Read(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var dims [3]int

	for i := range dims {
		if !sc.Scan() {
			return nil, headerError(sc.Err(), i)
		}

		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: dimension %d: %w", ErrFormat, i, err)
		}

		dims[i] = v
	}

	d := Dims{dims[0], dims[1], dims[2]}
	if !d.valid() || d.Len() > MaxReadElements {
		return nil, fmt.Errorf("%w: header %v exceeds %d elements or is not positive", ErrFormat, d, MaxReadElements)
	}

	t, err := New(d.NX, d.NY, d.NZ)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	for i := range t.data {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("failed to read tensor body: %w", err)
			}

			return nil, fmt.Errorf("%w: got %d of %d values", ErrFormat, i, len(t.data))
		}

		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %w", ErrFormat, i, err)
		}

		t.data[i] = v
	}

	return t, nil
}

func headerError(err error, field int) error {
	if err != nil {
		return fmt.Errorf("failed to read tensor header: %w", err)
	}

	return fmt.Errorf("%w: missing dimension %d", ErrFormat, field)
}

// Save writes t to the named file in the format accepted by Load.
func (t *Dense) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tensor file: %w", err)
	}

	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close tensor file: %w", err)
	}

	return nil
}

// Write emits the header line followed by one value per line with 16
// significant digits.
func (t *Dense) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d %d\n", t.dims.NX, t.dims.NY, t.dims.NZ)

	for _, v := range t.data {
		bw.WriteString(strconv.FormatFloat(v, 'g', 16, 64))
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write tensor: %w", err)
	}

	return nil
}
