// Package guide generates PAM-anchored guide-RNA candidates on one strand and
// narrows them with an ordered filter pipeline. It knows nothing about
// sessions, alignment or output; keep it domain-only.
package guide
