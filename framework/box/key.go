package box

import "reflect"

// ── Key derivation ────────────────────────────────────────────────────────────

// KeyFor derives the lookup key for type T and an optional qualifier. The
// qualifier lets several services of the same type live side by side:
//
//	box.Register(b, "primary", box.Permanent, newPrimaryDB)
//	box.Register(b, "replica", box.Permanent, newReplicaDB)
//	db := box.Resolve[*sql.DB](b, "replica")
//
// Named types are keyed by their full package path, so identically named types
// from different packages never collide. Unnamed types (pointers, slices,
// maps, …) fall back to their display string.
func KeyFor[T any](qualifier string) string {
	return qualifier + typeName(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeKey returns the derived key for v's dynamic type, for call sites that
// work with the raw string-keyed surface.
//
//	key := box.TypeKey(&UserRepository{})  // "*main.UserRepository"
//	b.Register(key, box.Permanent, factory)
func TypeKey(v any) string {
	return typeName(reflect.TypeOf(v))
}

func typeName(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
