package signal

import (
	"sync"

	"github.com/Lithos-Systems/petra-plc/internal/errs"
)

// Bus is the shared, concurrency-safe key/value store of live signal
// values. It is safe for simultaneous use by the scanning goroutine and
// external observers (UI, test harness, monitors).
//
// Per-key operations are atomic via sync.Map's internal sharding; there is
// no single lock across the whole keyspace, so ordering between writes to
// distinct keys is not guaranteed (see spec §5). The pack carries no
// third-party concurrent-map library (DashMap's closest Go analogue,
// orcaman/concurrent-map, never appears in any example repo), so this
// uses the standard library's sync.Map, itself built for exactly this
// read-heavy, many-writer shape.
type Bus struct {
	values *sync.Map
}

// NewBus creates an empty bus.
func NewBus() Bus {
	return Bus{values: &sync.Map{}}
}

// Clone returns another handle to the same underlying store.
func (b Bus) Clone() Bus { return b }

// Set inserts or overwrites a signal value. It never fails on type
// grounds; the last writer for a given key wins.
func (b Bus) Set(name string, v Value) {
	b.values.Store(name, v)
}

// Get returns the current value of a signal, or SignalNotFoundError.
func (b Bus) Get(name string) (Value, error) {
	raw, ok := b.values.Load(name)
	if !ok {
		return Value{}, &errs.SignalNotFoundError{Name: name}
	}
	return raw.(Value), nil
}

// GetBool reads and coerces a signal to bool.
func (b Bus) GetBool(name string) (bool, error) {
	v, err := b.Get(name)
	if err != nil {
		return false, err
	}
	out, ok := v.AsBool()
	if !ok {
		return false, &errs.TypeMismatchError{Expected: "bool", Actual: v.TypeName()}
	}
	return out, nil
}

// GetInt reads and coerces a signal to int32.
func (b Bus) GetInt(name string) (int32, error) {
	v, err := b.Get(name)
	if err != nil {
		return 0, err
	}
	out, ok := v.AsInt()
	if !ok {
		return 0, &errs.TypeMismatchError{Expected: "int", Actual: v.TypeName()}
	}
	return out, nil
}

// GetFloat reads and coerces a signal to float64.
func (b Bus) GetFloat(name string) (float64, error) {
	v, err := b.Get(name)
	if err != nil {
		return 0, err
	}
	out, ok := v.AsFloat()
	if !ok {
		return 0, &errs.TypeMismatchError{Expected: "float", Actual: v.TypeName()}
	}
	return out, nil
}

// Exists reports whether a signal has ever been set.
func (b Bus) Exists(name string) bool {
	_, ok := b.values.Load(name)
	return ok
}

// Clear removes every signal. Testing aid only.
func (b Bus) Clear() {
	b.values.Range(func(key, _ interface{}) bool {
		b.values.Delete(key)
		return true
	})
}

// Entry is one (name, value) pair returned by Iter.
type Entry struct {
	Name  string
	Value Value
}

// Iter returns a copy of every signal, safe to traverse without holding
// any lock on the bus. The copy is taken key by key with sync.Map.Range,
// so it is not a consistent point-in-time view: a write made while Iter
// runs may or may not appear in it, independently for each key.
func (b Bus) Iter() []Entry {
	var out []Entry
	b.values.Range(func(key, value interface{}) bool {
		out = append(out, Entry{Name: key.(string), Value: value.(Value)})
		return true
	})
	return out
}
