package runtime

import (
	"sort"
	"strings"
)

// protoKey is the reserved property name used to express a prototype link;
// member lookup walks this chain when a key is absent on the object itself.
const protoKey = "__proto__"

// Object is a shared, mutable property bag. Equality between Object values
// is identity-based (same backing store), matching §3's "Object" data
// model; callers share an *Object by reference rather than copying it.
type Object struct {
	properties map[string]Value
}

// NewObject creates an empty object with no prototype.
func NewObject() *Object {
	return &Object{properties: make(map[string]Value)}
}

// Get reads a property, walking the __proto__ chain when the key is absent
// on this object. A wholly unresolved key yields Undefined, per §3's
// invariant.
func (o *Object) Get(key string) Value {
	if v, ok := o.properties[key]; ok {
		return v
	}
	if protoVal, ok := o.properties[protoKey]; ok && protoVal.Kind == KindObject {
		return protoVal.Object.Get(key)
	}
	return Undefined()
}

// GetOwn reads only this object's own property, without walking the
// prototype chain, reporting whether the key was present.
func (o *Object) GetOwn(key string) (Value, bool) {
	v, ok := o.properties[key]
	return v, ok
}

// Set writes an own property, mutating the shared backing store (so every
// binding that aliases this *Object observes the write).
func (o *Object) Set(key string, v Value) {
	o.properties[key] = v
}

// Delete removes an own property.
func (o *Object) Delete(key string) {
	delete(o.properties, key)
}

// Has reports whether key resolves anywhere on the prototype chain.
func (o *Object) Has(key string) bool {
	if _, ok := o.properties[key]; ok {
		return true
	}
	if protoVal, ok := o.properties[protoKey]; ok && protoVal.Kind == KindObject {
		return protoVal.Object.Has(key)
	}
	return false
}

// Keys returns this object's own property names in a stable (sorted) order,
// excluding the reserved __proto__ link, for deterministic iteration and
// printing.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.properties))
	for k := range o.properties {
		if k == protoKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetPrototype links o to proto via the reserved __proto__ property.
func (o *Object) SetPrototype(proto *Object) {
	o.properties[protoKey] = Obj(proto)
}

func (o *Object) String() string {
	keys := o.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + o.Get(k).String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
