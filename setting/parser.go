package setting

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Parser converts a raw configuration string into a typed value.
type Parser[T any] func(raw string) (T, error)

// MustParse parses raw and panics if it is malformed.
// It is meant for declaration-time literals such as constraint bounds:
//
//	setting.Min(setting.Duration.MustParse("3s"))
func (p Parser[T]) MustParse(raw string) T {
	value, err := p(raw)
	if err != nil {
		panic(fmt.Sprintf("setting: cannot parse %q: %v", raw, err))
	}

	return value
}

//nolint:gochecknoglobals // parsers are immutable declarations.
var (
	// String returns the raw value unchanged.
	String Parser[string] = func(raw string) (string, error) { return raw, nil }

	// Int parses a decimal integer.
	Int Parser[int] = parseInt

	// Int64 parses a decimal 64-bit integer.
	Int64 Parser[int64] = parseInt64

	// Float parses a floating point number.
	Float Parser[float64] = parseFloat

	// Bool parses "true" or "false", ignoring case.
	Bool Parser[bool] = parseBool

	// Duration parses a number followed by an optional unit: ms (the default), s, m or h.
	Duration Parser[time.Duration] = parseDuration

	// ByteSize parses a number of bytes followed by an optional binary suffix: k, m or g.
	ByteSize Parser[int64] = parseByteSize

	// Path parses a filesystem path. Relative paths stay relative, see BasePath.
	Path Parser[string] = parsePath

	// URI parses an absolute or relative URI.
	URI Parser[*url.URL] = parseURI

	// NormalizedRelativeURI keeps only the path of a URI, collapsing repeated
	// slashes and stripping a trailing slash.
	NormalizedRelativeURI Parser[*url.URL] = parseNormalizedRelativeURI

	// HostnamePorts parses "host:port" or "host:from-to".
	HostnamePorts Parser[HostnamePort] = parseHostnamePort
)

// Options returns a parser accepting only the given values.
func Options(values ...string) Parser[string] {
	allowed := slices.Clone(values)

	return func(raw string) (string, error) {
		if !slices.Contains(allowed, raw) {
			return "", fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
		}

		return raw, nil
	}
}

// List returns a parser splitting the raw value on separator and parsing every
// item with elem. Trailing empty items are dropped and an empty value yields an
// empty list.
func List[T any](separator string, elem Parser[T]) Parser[[]T] {
	return func(raw string) ([]T, error) {
		if raw == "" {
			return []T{}, nil
		}

		items := strings.Split(raw, separator)
		for len(items) > 0 && items[len(items)-1] == "" {
			items = items[:len(items)-1]
		}

		values := make([]T, 0, len(items))

		for i, item := range items {
			value, err := elem(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			values = append(values, value)
		}

		return values, nil
	}
}

func parseInt(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer", raw)
	}

	return value, nil
}

func parseInt64(raw string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer", raw)
	}

	return value, nil
}

func parseFloat(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid number", raw)
	}

	return value, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a boolean, expected true or false", raw)
	}
}

type unit struct {
	suffix     string
	multiplier int64
}

// Longer suffixes come first so that "ms" is not read as "s".
//
//nolint:gochecknoglobals // lookup tables.
var (
	durationUnits = []unit{
		{"ms", int64(time.Millisecond)},
		{"s", int64(time.Second)},
		{"m", int64(time.Minute)},
		{"h", int64(time.Hour)},
	}
	byteUnits = []unit{
		{"k", 1 << 10},
		{"m", 1 << 20},
		{"g", 1 << 30},
	}
)

// scaled splits a trailing unit off raw and multiplies the number by it.
// Without a suffix the number is multiplied by fallback.
func scaled(raw string, units []unit, fallback int64) (int64, error) {
	text := strings.ToLower(strings.TrimSpace(raw))
	multiplier := fallback

	for _, u := range units {
		if strings.HasSuffix(text, u.suffix) {
			text = strings.TrimSpace(strings.TrimSuffix(text, u.suffix))
			multiplier = u.multiplier

			break
		}
	}

	number, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}

	if number > math.MaxInt64/multiplier || number < math.MinInt64/multiplier {
		return 0, errors.New("out of range")
	}

	return number * multiplier, nil
}

func parseDuration(raw string) (time.Duration, error) {
	value, err := scaled(raw, durationUnits, int64(time.Millisecond))
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid duration: %w", raw, err)
	}

	return time.Duration(value), nil
}

func parseByteSize(raw string) (int64, error) {
	value, err := scaled(raw, byteUnits, 1)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid byte size: %w", raw, err)
	}

	return value, nil
}

func parsePath(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.New("path must not be empty")
	}

	return filepath.Clean(raw), nil
}

func parseURI(raw string) (*url.URL, error) {
	uri, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid URI: %w", raw, err)
	}

	return uri, nil
}

var slashRuns = regexp.MustCompile(`/{2,}`) //nolint:gochecknoglobals // compiled once.

func parseNormalizedRelativeURI(raw string) (*url.URL, error) {
	uri, err := parseURI(raw)
	if err != nil {
		return nil, err
	}

	path := slashRuns.ReplaceAllString(uri.Path, "/")

	return &url.URL{Path: strings.TrimSuffix(path, "/")}, nil //nolint:exhaustruct // path only
}

// HostnamePort is a host with a single port or an inclusive port range.
// Host is empty when only ports are given; From and To are zero when no port is given.
type HostnamePort struct {
	Host string
	From int
	To   int
}

func (h HostnamePort) String() string {
	switch {
	case h.From == 0:
		return h.Host
	case h.From == h.To:
		return fmt.Sprintf("%s:%d", h.Host, h.From)
	default:
		return fmt.Sprintf("%s:%d-%d", h.Host, h.From, h.To)
	}
}

// Ports returns the ports of the range in ascending order.
func (h HostnamePort) Ports() []int {
	if h.From == 0 {
		return nil
	}

	ports := make([]int, 0, h.To-h.From+1)
	for port := h.From; port <= h.To; port++ {
		ports = append(ports, port)
	}

	return ports
}

func parseHostnamePort(raw string) (HostnamePort, error) {
	text := strings.TrimSpace(raw)

	sep := strings.LastIndex(text, ":")
	if sep < 0 || strings.HasSuffix(text, "]") {
		return HostnamePort{Host: text, From: 0, To: 0}, nil
	}

	from, to, isRange := strings.Cut(text[sep+1:], "-")
	if !isRange {
		to = from
	}

	fromPort, err := parsePort(from)
	if err != nil {
		return HostnamePort{}, fmt.Errorf("%q: %w", raw, err)
	}

	toPort, err := parsePort(to)
	if err != nil {
		return HostnamePort{}, fmt.Errorf("%q: %w", raw, err)
	}

	if toPort < fromPort {
		return HostnamePort{}, fmt.Errorf("%q: port range is reversed", raw)
	}

	return HostnamePort{Host: text[:sep], From: fromPort, To: toPort}, nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > math.MaxUint16 {
		return 0, fmt.Errorf("%q is not a valid port", raw)
	}

	return port, nil
}
