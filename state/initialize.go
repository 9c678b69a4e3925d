package state

import (
	"time"

	"spt/css"
)

// DefaultLabelName is the label reference resolved to the built-in badge
// instead of an asset file.
const DefaultLabelName = "default"

// defaultStylesheet provides classes usable by any compose script.
const defaultStylesheet = `
.em { font-style: italic }
.strong { font-weight: bold }
.strong-em { font-weight: bold; font-style: italic }
.u { text-decoration: underline }
.s { text-decoration: line-through }
.sup { vertical-align: super; font-size: 0.6em }
.sub { vertical-align: sub; font-size: 0.6em }
.small { font-size: 0.8em }
.large { font-size: 1.5em }
`

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	classes, _ := css.ParseClasses([]byte(defaultStylesheet), nil)
	return &LocalEnv{
		start:   time.Now(),
		Classes: classes,
		DefaultLabel: []byte(`<svg viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg">
  <path d="M10 1.5 L12.6 7 L18.5 7.6 L14 11.6 L15.3 17.5 L10 14.5 L4.7 17.5 L6 11.6 L1.5 7.6 L7.4 7 Z"
        fill="#F5B301" stroke="#8A6400" stroke-width="1"/>
</svg>`),
	}
}
