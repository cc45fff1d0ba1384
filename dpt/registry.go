package dpt

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Registry indexes concrete transcoders by identity and by value-type alias.
//
// A registry is populated once and read-only afterwards, so lookups are safe
// for concurrent use without locking. Registering two transcoders with the
// same (main, sub) identity or the same alias is rejected at build time
// rather than silently resolving to whichever was registered first.
type Registry struct {
	byID    map[ID]Transcoder
	byAlias map[string]Transcoder
}

// NewRegistry creates a registry holding the given transcoders.
//
// Returns an error if two transcoders declare the same identity or the same
// value-type alias.
func NewRegistry(transcoders ...Transcoder) (*Registry, error) {
	r := &Registry{
		byID:    make(map[ID]Transcoder, len(transcoders)),
		byAlias: make(map[string]Transcoder, len(transcoders)),
	}
	for _, t := range transcoders {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a transcoder to the registry.
//
// Returns an error if its (main, sub) identity or value-type alias is
// already taken.
func (r *Registry) Register(t Transcoder) error {
	id := t.ID()
	if existing, ok := r.byID[id]; ok {
		return fmt.Errorf("dpt: duplicate registration for %s: %q and %q",
			id, existing.ValueType(), t.ValueType())
	}
	if alias := t.ValueType(); alias != "" {
		if existing, ok := r.byAlias[alias]; ok {
			return fmt.Errorf("dpt: duplicate value type %q: %s and %s",
				alias, existing.ID(), id)
		}
		r.byAlias[alias] = t
	}
	r.byID[id] = t
	return nil
}

// ByID returns the transcoder with exactly the given identity. An ID without
// a sub number only matches a transcoder that also declares none; it is not
// a wildcard over sub numbers.
func (r *Registry) ByID(id ID) (Transcoder, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// ByMain returns the transcoder for the generic format with the given main
// number and no sub number.
func (r *Registry) ByMain(main int) (Transcoder, bool) {
	return r.ByID(MainID(main))
}

// ByValueType returns the transcoder with the given value-type alias.
// Surrounding whitespace is ignored.
func (r *Registry) ByValueType(alias string) (Transcoder, bool) {
	t, ok := r.byAlias[strings.TrimSpace(alias)]
	return t, ok
}

// Resolve returns the transcoder matching a loosely-typed identifier, as
// found in configuration files and ETS project imports:
//
//   - an integer: the DPT main number (matches the generic format only);
//   - a string: a value-type alias, or "9", "DPT-9" (case and whitespace
//     insensitive), or "9.001";
//   - an ID;
//   - a map with "main" and optional "sub" keys holding numbers; a nil or
//     absent sub matches only the generic format.
//
// A miss is reported as (nil, false); it is a normal outcome, not an error.
func (r *Registry) Resolve(identifier any) (Transcoder, bool) {
	switch v := identifier.(type) {
	case ID:
		return r.ByID(v)
	case string:
		return r.resolveString(v)
	case map[string]any:
		return r.resolveMapping(v)
	default:
		if n, ok := toInt(identifier); ok {
			return r.ByMain(n)
		}
		return nil, false
	}
}

// resolveString resolves a string identifier: exact alias match first, then
// the numeric fallbacks for "9", "DPT-9", and "9.001" style strings.
func (r *Registry) resolveString(s string) (Transcoder, bool) {
	s = strings.TrimSpace(s)
	if t, ok := r.ByValueType(s); ok {
		return t, true
	}

	// Backwards-compatible numeric forms: strip an optional "DPT-" prefix
	// (any case), then parse "<main>" or "<main>.<sub>".
	rest := strings.TrimPrefix(strings.ToUpper(s), "DPT-")
	rest = strings.TrimSpace(rest)

	if isDigits(rest) {
		main, err := strconv.Atoi(rest)
		if err != nil {
			return nil, false
		}
		return r.ByMain(main)
	}

	mainPart, subPart, found := strings.Cut(rest, ".")
	if !found || !isDigits(mainPart) || !isDigits(subPart) {
		return nil, false
	}
	main, err := strconv.Atoi(mainPart)
	if err != nil {
		return nil, false
	}
	sub, err := strconv.Atoi(subPart)
	if err != nil {
		return nil, false
	}
	return r.ByID(SubID(main, sub))
}

// isDigits reports whether s is non-empty and consists only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// resolveMapping resolves a {"main": ..., "sub": ...} identifier. The main
// number is required; a nil or absent sub is treated as "no sub number" and
// only matches transcoders that declare none.
func (r *Registry) resolveMapping(m map[string]any) (Transcoder, bool) {
	main, ok := toInt(m["main"])
	if !ok {
		return nil, false
	}
	subValue, present := m["sub"]
	if !present || subValue == nil {
		return r.ByMain(main)
	}
	sub, ok := toInt(subValue)
	if !ok {
		return nil, false
	}
	return r.ByID(SubID(main, sub))
}

// Transcoders returns all registered transcoders ordered by (main, sub),
// with each generic format before its specific sub types.
func (r *Registry) Transcoders() []Transcoder {
	out := make([]Transcoder, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].ID(), out[j].ID()
		if a.Main != b.Main {
			return a.Main < b.Main
		}
		if a.HasSub != b.HasSub {
			return !a.HasSub
		}
		return a.Sub < b.Sub
	})
	return out
}

// toInt coerces the int-like values found in parsed YAML and JSON: Go
// integer kinds, floats with an integral value, and digit strings.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return toInt(float64(v))
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// defaultRegistry holds every built-in transcoder. Construction happens once
// at package initialisation; a duplicate identity among the built-ins is a
// programming error and panics immediately.
var defaultRegistry = func() *Registry {
	r, err := NewRegistry(builtins()...)
	if err != nil {
		panic(err)
	}
	return r
}()

// Default returns the registry of all built-in transcoders.
func Default() *Registry {
	return defaultRegistry
}

// Resolve looks up a transcoder in the default registry. See
// Registry.Resolve for the accepted identifier forms.
func Resolve(identifier any) (Transcoder, bool) {
	return defaultRegistry.Resolve(identifier)
}

// ByID looks up a transcoder in the default registry by exact identity.
func ByID(id ID) (Transcoder, bool) {
	return defaultRegistry.ByID(id)
}

// ByMain looks up the generic transcoder for a main number in the default
// registry.
func ByMain(main int) (Transcoder, bool) {
	return defaultRegistry.ByMain(main)
}

// ByValueType looks up a transcoder in the default registry by its
// value-type alias.
func ByValueType(alias string) (Transcoder, bool) {
	return defaultRegistry.ByValueType(alias)
}

// builtins lists every concrete transcoder shipped with the package.
func builtins() []Transcoder {
	return []Transcoder{
		// DPT 1.xxx: 1-bit
		Switch, Bool, Enable, Step, UpDown, OpenClose, Start, Trigger,
		// DPT 5.xxx: 1-byte unsigned
		Value1ByteUnsigned, Scaling, Angle, PercentU8,
		// DPT 9.xxx: 2-byte float
		Float2Byte, Temperature, Lux, WindSpeed, Humidity,
		// DPT 10.001: time of day
		Time,
		// DPT 17/18: scenes
		SceneNumber, SceneControl,
		// DPT 232.600: RGB colour
		ColourRGB,
	}
}
