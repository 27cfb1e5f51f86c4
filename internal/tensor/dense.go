package tensor

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Dense is a dense n-dimensional array of float64 values in row-major
// layout. It is the value type the autodiff graph wraps; callers must
// treat a Dense as immutable once it is attached to a graph node.
type Dense struct {
	data   []float64
	shape  Shape
	stride []int
}

// FromSlice creates a Dense from a flat float64 slice and a shape.
// The slice is copied into the array's memory.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	d := Zeros(shape)
	copy(d.data, data)
	return d, nil
}

// FromAny converts a scalar or arbitrarily nested numeric slice into a
// Dense. Input that is ragged or contains non-numeric elements fails
// with an error wrapping ErrConversion.
func FromAny(v any) (*Dense, error) {
	rv := reflect.ValueOf(v)
	shape := Shape{}
	probe := rv
	for probe.Kind() == reflect.Slice || probe.Kind() == reflect.Array {
		shape = append(shape, probe.Len())
		if probe.Len() == 0 {
			break
		}
		probe = probe.Index(0)
		if probe.Kind() == reflect.Interface {
			probe = probe.Elem()
		}
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	d := Zeros(shape)
	i := 0
	if err := flatten(rv, shape, 0, d.data, &i); err != nil {
		return nil, err
	}
	return d, nil
}

// flatten walks the nested value depth-first, checking rectangularity
// against the shape probed from the first element of each level.
func flatten(rv reflect.Value, shape Shape, depth int, dst []float64, i *int) error {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if depth == len(shape) {
		f, ok := asFloat64(rv)
		if !ok {
			return fmt.Errorf("%w: non-numeric element of type %v", ErrConversion, rv.Kind())
		}
		dst[*i] = f
		*i++
		return nil
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("%w: ragged input (expected nesting depth %d, element ends at depth %d)",
			ErrConversion, len(shape), depth)
	}
	if rv.Len() != shape[depth] {
		return fmt.Errorf("%w: ragged input (row of length %d where %d expected)",
			ErrConversion, rv.Len(), shape[depth])
	}
	for j := 0; j < rv.Len(); j++ {
		if err := flatten(rv.Index(j), shape, depth+1, dst, i); err != nil {
			return err
		}
	}
	return nil
}

// asFloat64 converts any numeric reflect value to float64.
func asFloat64(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// Shape returns the array's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Data returns the backing slice in row-major order.
// Modifications to the returned slice will modify the array.
func (d *Dense) Data() []float64 {
	return d.data
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (d *Dense) At(indices ...int) float64 {
	return d.data[d.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (d *Dense) Set(value float64, indices ...int) {
	d.data[d.offsetOf(indices)] = value
}

func (d *Dense) offsetOf(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, d.shape[i]))
		}
		offset += idx * d.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the array.
func (d *Dense) Clone() *Dense {
	out := Zeros(d.shape)
	copy(out.data, d.data)
	return out
}

// Equal reports whether two arrays have the same shape and identical values.
func (d *Dense) Equal(other *Dense) bool {
	if !d.shape.Equal(other.shape) {
		return false
	}
	for i, v := range d.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether two arrays have the same shape and values
// within tol of each other.
func (d *Dense) AllClose(other *Dense, tol float64) bool {
	if !d.shape.Equal(other.shape) {
		return false
	}
	for i, v := range d.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String renders the array values with nested brackets, e.g. "[[1 2] [3 4]]".
func (d *Dense) String() string {
	var b strings.Builder
	d.format(&b, 0, 0)
	return b.String()
}

func (d *Dense) format(b *strings.Builder, depth, offset int) {
	if depth == len(d.shape) {
		fmt.Fprintf(b, "%g", d.data[offset])
		return
	}
	b.WriteByte('[')
	for i := 0; i < d.shape[depth]; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		d.format(b, depth+1, offset+i*d.stride[depth])
	}
	b.WriteByte(']')
}
