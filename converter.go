package cratetype

import (
	"encoding/json"
	"fmt"
	"math"
	"net/netip"
	"time"
)

// ConverterFunc converts one raw column value into its Go representation.
// A nil input represents SQL NULL; by convention a ConverterFunc returns
// nil for it, though a custom function may map NULL to a placeholder.
type ConverterFunc func(value any) (any, error)

// Plan is the resolved form of a TypeDescriptor, ready to convert values.
// Resolve a column type once and reuse the plan for every row of that
// column; this keeps registry lookups out of the per-row loop.
type Plan interface {
	// Convert converts one raw column value.
	Convert(value any) (any, error)
}

type scalarPlan struct {
	fn ConverterFunc
}

func (p *scalarPlan) Convert(value any) (any, error) {
	return p.fn(value)
}

type arrayPlan struct {
	// wrap is the function registered for the Array code itself, nil when
	// none is registered. It post-processes the converted element slice.
	wrap ConverterFunc
	elem Plan
}

func (p *arrayPlan) Convert(value any) (any, error) {
	if value == nil {
		// NULL propagates to the element converter so a custom element
		// function decides what NULL means.
		return p.elem.Convert(nil)
	}
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot convert %T as array value", value)
	}
	converted := make([]any, len(items))
	for i, item := range items {
		v, err := p.elem.Convert(item)
		if err != nil {
			return nil, err
		}
		converted[i] = v
	}
	if p.wrap != nil {
		return p.wrap(converted)
	}
	return converted, nil
}

// Converter maps CrateDB column type codes to conversion functions and
// resolves col_types descriptors into Plans.
//
// The registry is meant to be configured once and then shared: Get,
// Resolve, Convert and Plan.Convert do not mutate it and are safe for
// unsynchronized concurrent use once Set, Remove and Update calls have
// stopped. Mutating the registry while other goroutines read it requires
// external synchronization.
type Converter struct {
	mappings    map[DataType]ConverterFunc
	defaultFunc ConverterFunc
	strict      bool
	logger      Logger
	logLevel    LogLevel
}

// ConverterOption configures a Converter at construction time.
type ConverterOption func(*Converter)

// WithMappings merges mappings into the new converter's registry. The map
// is copied; later changes to it do not affect the converter.
func WithMappings(mappings map[DataType]ConverterFunc) ConverterOption {
	return func(c *Converter) {
		for dt, fn := range mappings {
			c.mappings[dt] = fn
		}
	}
}

// WithDefault replaces the fallback function used for codes without a
// registered conversion. The default fallback passes values through
// unchanged.
func WithDefault(fn ConverterFunc) ConverterOption {
	return func(c *Converter) {
		c.defaultFunc = fn
	}
}

// WithStrict makes Resolve fail with *UnknownTypeCodeError when it meets
// a scalar code that is neither registered nor part of the documented
// type set, instead of falling back to the default function.
func WithStrict() ConverterOption {
	return func(c *Converter) {
		c.strict = true
	}
}

// WithLogger enables logging of conversion diagnostics, such as unknown
// type codes falling back to the default function.
func WithLogger(logger Logger) ConverterOption {
	return func(c *Converter) {
		c.logger = logger
		if c.logLevel == LogLevelNone {
			c.logLevel = LogLevelDebug
		}
	}
}

// WithLogLevel sets the minimum level passed to the logger.
func WithLogLevel(level LogLevel) ConverterOption {
	return func(c *Converter) {
		c.logLevel = level
	}
}

// NewConverter returns a Converter with an empty registry and a
// pass-through default function, then applies opts.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		mappings:    make(map[DataType]ConverterFunc),
		defaultFunc: toDefault,
		logLevel:    LogLevelNone,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefaultConverter returns a Converter preloaded with the built-in
// conversions: ToIPAddress for IP columns and ToTimestamp for both
// timestamp variants. Every call returns an independent copy of the
// built-in mapping; registering or removing functions on one instance
// never affects another.
func NewDefaultConverter(opts ...ConverterOption) *Converter {
	return NewConverter(append([]ConverterOption{WithMappings(defaultMappings)}, opts...)...)
}

// Get returns the registered function for dt, or the converter's default
// function when nothing is registered. Get never fails.
func (c *Converter) Get(dt DataType) ConverterFunc {
	if fn, ok := c.mappings[dt]; ok {
		return fn
	}
	return c.defaultFunc
}

// Set registers fn for dt, replacing any previous registration.
func (c *Converter) Set(dt DataType, fn ConverterFunc) {
	c.mappings[dt] = fn
}

// Remove unregisters dt, reverting it to the default function. Removing
// an unregistered code is a no-op.
func (c *Converter) Remove(dt DataType) {
	delete(c.mappings, dt)
}

// Update merges mappings into the registry, replacing registrations for
// codes present in both.
func (c *Converter) Update(mappings map[DataType]ConverterFunc) {
	for dt, fn := range mappings {
		c.mappings[dt] = fn
	}
}

// Resolve turns a column type descriptor into a Plan. Compound
// descriptors whose outer code is not Array fail with
// *InvalidTypeDescriptorError. Scalar codes outside the documented set
// fail with *UnknownTypeCodeError under WithStrict; otherwise they
// resolve to the default function.
func (c *Converter) Resolve(td TypeDescriptor) (Plan, error) {
	if td.Elem != nil {
		if td.Code != Array {
			return nil, &InvalidTypeDescriptorError{
				Reason: fmt.Sprintf("data type %v is not a collection type", td.Code),
			}
		}
		elem, err := c.Resolve(*td.Elem)
		if err != nil {
			return nil, err
		}
		return &arrayPlan{wrap: c.mappings[Array], elem: elem}, nil
	}
	if _, ok := c.mappings[td.Code]; !ok && !td.Code.Known() {
		if c.strict {
			return nil, &UnknownTypeCodeError{Code: int32(td.Code)}
		}
		if c.shouldLog(LogLevelDebug) {
			c.logger.Log(LogLevelDebug, "unknown column type code, using default conversion",
				map[string]any{"code": int32(td.Code)})
		}
	}
	return &scalarPlan{fn: c.Get(td.Code)}, nil
}

// Convert resolves descriptor and converts a single value. Callers
// processing many rows should Resolve once per column and reuse the Plan
// instead.
func (c *Converter) Convert(td TypeDescriptor, value any) (any, error) {
	plan, err := c.Resolve(td)
	if err != nil {
		return nil, err
	}
	return plan.Convert(value)
}

func (c *Converter) shouldLog(level LogLevel) bool {
	return c.logger != nil && c.logLevel >= level
}

// defaultMappings is the built-in template NewDefaultConverter copies for
// each instance. Never hand this map to a Converter directly.
var defaultMappings = map[DataType]ConverterFunc{
	IP:                 ToIPAddress,
	TimestampWithTZ:    ToTimestamp,
	TimestampWithoutTZ: ToTimestamp,
}

func toDefault(value any) (any, error) {
	return value, nil
}

// ToIPAddress converts the textual form CrateDB sends for IP columns into
// a netip.Addr. NULL converts to nil. Malformed input fails with
// *InvalidAddressFormatError.
func ToIPAddress(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, &InvalidAddressFormatError{Value: value}
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return nil, &InvalidAddressFormatError{Value: value, Err: err}
	}
	return addr, nil
}

// maxEpochMilli bounds the millisecond values ToTimestamp accepts so the
// whole milliseconds fit in an int64 for time.UnixMilli.
const maxEpochMilli = float64(math.MaxInt64)

// ToTimestamp converts the epoch millisecond number CrateDB sends for
// timestamp columns into a UTC time.Time. Accepted inputs are float64,
// int, int64 and json.Number. NULL converts to nil. NaN, infinities,
// other input types and values outside the representable range fail with
// *InvalidTimestampValueError. A float32 is rejected too; it cannot hold
// current epoch milliseconds to the second.
func ToTimestamp(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	var msec float64
	switch v := value.(type) {
	case float64:
		msec = v
	case int:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int64:
		return time.UnixMilli(v).UTC(), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return time.UnixMilli(n).UTC(), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, &InvalidTimestampValueError{Value: value, Err: err}
		}
		msec = f
	default:
		return nil, &InvalidTimestampValueError{Value: value}
	}
	if math.IsNaN(msec) || math.IsInf(msec, 0) || msec <= -maxEpochMilli || msec >= maxEpochMilli {
		return nil, &InvalidTimestampValueError{Value: value}
	}
	// Split whole milliseconds off before any division: the fractional
	// part of msec is exact to well under a nanosecond, while the
	// fractional part of msec/1000 is not at epoch magnitudes.
	whole, frac := math.Modf(msec)
	return time.UnixMilli(int64(whole)).Add(time.Duration(math.Round(frac * float64(time.Millisecond)))).UTC(), nil
}
