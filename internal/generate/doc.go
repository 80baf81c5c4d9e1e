// Package generate runs directive expansion over source trees.
//
// Run discovers directive sources under the given roots, expands each one
// and writes the generated file next to it. With a cache attached,
// sources whose source, config and on-disk output are unchanged since the
// last run are skipped without parsing; the config fingerprint includes
// expand.Version, so an expander upgrade invalidates every entry. Check
// mode ignores the cache and reports missing or stale outputs without
// writing anything.
//
// Files are processed concurrently; the report lists them in path order.
package generate
