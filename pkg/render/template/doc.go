// Package template defines the engine contract used to turn named template
// sources into markup. The view layer only depends on this interface; the
// pongo2 implementation lives in the gotemplate subpackage.
package template
