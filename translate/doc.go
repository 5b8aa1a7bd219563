// Package translate implements the language collaborators the sentiment
// pipeline consumes: a script-based language detector and a translation
// provider backed by the public Google translate endpoint.
//
// Both degrade instead of failing: detection defaults to "en" for Latin
// script and the translator returns its input unchanged on unsupported
// targets, identity translations or transport errors. Markdown code blocks
// and inline code survive translation untouched.
package translate
