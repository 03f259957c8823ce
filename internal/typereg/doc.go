// Package typereg merges per-platform type records into a single registry and
// resolves each type name to a display size.
//
// A platform descriptor is a sequence of compilation units. Each unit maps a
// type name to a Record (base, struct or typedef). The Loader folds the units
// of one platform into a Table, rejecting inconsistent duplicates unless the
// name is in the AllowList, and reports every name it saw so that reports can
// enumerate the union across platforms.
package typereg
